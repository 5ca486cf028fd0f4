package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	algonrrd "github.com/cwbudde/algo-nrrd"
)

var errNoIO = errors.New("both an input and an output file are required")

func (a *app) resampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resample",
		Short: "Resample a raw array.",
		Long: `resample reads a raw little-endian array, resamples it and writes the
result in the same raw layout. The array is described either by flags:

  nrrdresample resample -i in.raw -o out.raw -t uint8 -s 640,480 \
      -k cubic:0,0.5,cubic:0,0.5 --samples-out 320,240

or by a YAML or TOML job file passed with --job, with the same fields:

  input: in.raw
  output: out.raw
  type: uint8
  sizes: [640, 480]
  axes:
    - {kernel: "cubic:0,0.5", samples: 320}
    - {kernel: "cubic:0,0.5", samples: 240}

Kernel specs contain commas, so --kernels separates axes with ';' as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.job()
			if err != nil {
				return err
			}

			if j.Input == "" || j.Output == "" {
				return errNoIO
			}

			typ, req, err := j.request(a.parseOptions())
			if err != nil {
				return err
			}

			src, err := readRawFile(j.Input, typ, j.Sizes)
			if err != nil {
				return err
			}

			dst, err := a.resample(cmd.Context(), j, src, req)
			if err != nil {
				return err
			}

			return writeRawFile(j.Output, dst)
		},
		DisableAutoGenTag: true,
	}
}

// job returns the job file named by --job, or the job described by the
// resample flags.
func (a *app) job() (job, error) {
	if path := a.cfg.GetString("job"); path != "" {
		return loadJob(path)
	}

	renorm, round, clamp := a.cfg.GetBool("renormalize"), a.cfg.GetBool("round"), a.cfg.GetBool("clamp")

	j := job{
		Input:       a.cfg.GetString("input"),
		Output:      a.cfg.GetString("output"),
		Type:        a.cfg.GetString("type"),
		Sizes:       a.cfg.GetIntSlice("sizes"),
		Center:      a.cfg.GetString("center"),
		TypeOut:     a.cfg.GetString("type-out"),
		Boundary:    a.cfg.GetString("boundary"),
		Pad:         a.cfg.GetFloat64("pad"),
		Renormalize: &renorm,
		Round:       &round,
		Clamp:       &clamp,
		Cheap:       a.cfg.GetBool("cheap"),
	}

	kernels := splitKernels(a.cfg.GetStringSlice("kernels"))
	samples := a.cfg.GetIntSlice("samples-out")

	for i := range max(len(kernels), len(samples)) {
		var ax jobAxis

		if i < len(kernels) {
			ax.Kernel = kernels[i]
		}

		if i < len(samples) {
			ax.Samples = samples[i]
		}

		j.Axes = append(j.Axes, ax)
	}

	return j, nil
}

// splitKernels regroups kernel specs that the comma-separated flag syntax
// split apart. A piece continues the previous spec unless it follows a ';',
// contains a colon, names a kernel, or is empty or "-".
func splitKernels(parts []string) []string {
	var specs []string

	for _, part := range parts {
		for i, group := range strings.Split(part, ";") {
			for j, piece := range strings.Split(group, ",") {
				piece = strings.TrimSpace(piece)

				if len(specs) == 0 || (i > 0 && j == 0) || startsSpec(piece) {
					specs = append(specs, piece)
					continue
				}

				specs[len(specs)-1] += "," + piece
			}
		}
	}

	return specs
}

func startsSpec(piece string) bool {
	if piece == "" || piece == "-" || strings.Contains(piece, ":") {
		return true
	}

	_, ok := algonrrd.LookupKernel(piece)

	return ok
}
