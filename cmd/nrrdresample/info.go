package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	algonrrd "github.com/cwbudde/algo-nrrd"
	"github.com/cwbudde/algo-nrrd/internal/cpu"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the host and the kernel tables.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "nrrdresample v%s (%s)\n", version, runtime.Version())
			fmt.Fprintf(w, "cpu:      %s, %d logical cpus\n", cpu.DetectFeatures(), runtime.NumCPU())
			fmt.Fprintf(w, "workers:  %d\n", cpu.DefaultWorkers())
			fmt.Fprintf(w, "kernels:  %d built-in, %d tmf\n", len(algonrrd.Kernels()), len(algonrrd.KernelsTMF()))
			fmt.Fprintf(w, "parm0:    %g\n", a.parseOptions().DefaultParm0)
		},
		DisableAutoGenTag: true,
	}
}
