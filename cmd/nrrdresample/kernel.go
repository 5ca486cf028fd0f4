package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	algonrrd "github.com/cwbudde/algo-nrrd"
)

var errCheckFailed = errors.New("kernel check failed")

func (a *app) kernelListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in kernels and their aliases.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-12s %5s  %s\n", "KERNEL", "PARMS", "ALIASES")

			for _, k := range algonrrd.Kernels() {
				aliases := algonrrd.KernelAliases(k)
				fmt.Fprintf(w, "%-12s %5d  %s\n", k.Name(), k.NumParm(), strings.Join(aliases[1:], ","))
			}

			if a.cfg.GetBool("tmf") {
				for _, k := range algonrrd.KernelsTMF() {
					fmt.Fprintf(w, "%-12s %5d\n", k.Name(), k.NumParm())
				}
			}

			return nil
		},
		DisableAutoGenTag: true,
	}
}

func (a *app) kernelEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval SPEC",
		Short: "Evaluate a kernel on a regular grid of points.",
		Long: `eval prints x and the kernel value at --points evenly spaced positions
from --from to --to, after a header with the support and integral.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := a.parseOptions().Parse(args[0])
			if err != nil {
				return err
			}

			if err := algonrrd.KernelErr(spec.Kernel); err != nil {
				a.log.WithField("kernel", spec.String()).WithError(err).Warn("kernel evaluates to zero")
			}

			n := a.cfg.GetInt("points")
			if n < 1 {
				return fmt.Errorf("%w: --points %d", algonrrd.ErrZeroSamples, n)
			}

			from, to := a.cfg.GetFloat64("from"), a.cfg.GetFloat64("to")

			step := 0.0
			if n > 1 {
				step = (to - from) / float64(n-1)
			}

			parm := spec.Parms()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# %s support=%g integral=%g\n", spec, spec.Support(), spec.Kernel.Integral(parm))

			for i := range n {
				x := from + float64(i)*step
				fmt.Fprintf(w, "%g\t%g\n", x, spec.Kernel.Eval1d(x, parm))
			}

			return nil
		},
		DisableAutoGenTag: true,
	}
}

func (a *app) kernelCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check SPEC...",
		Short: "Run the kernel self-test.",
		Long: `check verifies, for each kernel spec, that single and vector evaluation
agree, that single and double precision agree, that the kernel vanishes
outside its support and that numerical integration matches its integral.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := algonrrd.KernelCheckOptions{
				Samples: a.cfg.GetInt("samples"),
				Seed:    uint64(a.cfg.GetInt("seed")),
			}

			failed := 0

			for _, arg := range args {
				spec, err := a.parseOptions().Parse(arg)
				if err != nil {
					return err
				}

				if err := algonrrd.CheckKernel(spec.Kernel, spec.Parms(), opts); err != nil {
					failed++

					a.log.WithFields(logrus.Fields{"kernel": spec.String()}).Error(err)
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tFAIL\n", spec)

					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\tok\n", spec)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errCheckFailed, failed, len(args))
			}

			return nil
		},
		DisableAutoGenTag: true,
	}
}
