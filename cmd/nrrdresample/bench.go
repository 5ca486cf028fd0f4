package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	algonrrd "github.com/cwbudde/algo-nrrd"
	"github.com/cwbudde/algo-nrrd/internal/cpu"
)

var errBenchConfig = errors.New("bench needs --iters >= 1 and --factor > 0")

type benchConfig struct {
	spec     algonrrd.KernelSpec
	boundary algonrrd.Boundary
	sizes    []int
	factor   float64
	iters    int
	seed     uint64
	workers  int
}

func (a *app) benchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time planning and execution on a random float32 array.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := a.parseOptions().Parse(a.cfg.GetString("kernel"))
			if err != nil {
				return err
			}

			boundary, err := algonrrd.ParseBoundary(a.cfg.GetString("boundary"))
			if err != nil {
				return err
			}

			bc := benchConfig{
				spec:     spec,
				boundary: boundary,
				sizes:    a.cfg.GetIntSlice("bench-sizes"),
				factor:   a.cfg.GetFloat64("factor"),
				iters:    a.cfg.GetInt("iters"),
				seed:     uint64(a.cfg.GetInt("seed")),
				workers:  a.cfg.GetInt("workers"),
			}

			if bc.iters < 1 || !(bc.factor > 0) {
				return errBenchConfig
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cpu: %s\n", cpu.DetectFeatures())

			switch p := a.cfg.GetString("precision"); p {
			case "float32":
				return runBench[float32](cmd.Context(), w, a, bc)
			case "float64":
				return runBench[float64](cmd.Context(), w, a, bc)
			default:
				return fmt.Errorf("%w: precision %q", algonrrd.ErrInvalidType, p)
			}
		},
		DisableAutoGenTag: true,
	}
}

func runBench[T algonrrd.Float](ctx context.Context, w io.Writer, a *app, bc benchConfig) error {
	src, err := algonrrd.NewArray(algonrrd.TypeFloat32, bc.sizes...)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(bc.seed, bc.seed))
	data := src.Data.([]float32)
	for i := range data {
		data[i] = rng.Float32()
	}

	c := algonrrd.NewContextT[T](algonrrd.WithLogger(a.log), algonrrd.WithWorkers(bc.workers))
	if err := c.SetInput(src); err != nil {
		return err
	}

	if err := c.SetBoundary(bc.boundary); err != nil {
		return err
	}

	for ax, n := range bc.sizes {
		if err := c.SetKernel(ax, bc.spec); err != nil {
			return err
		}

		if err := c.SetSamples(ax, max(1, int(math.Round(float64(n)*bc.factor)))); err != nil {
			return err
		}
	}

	start := cpu.Ticks()
	if err := c.Update(); err != nil {
		return err
	}

	plan := time.Duration(cpu.TicksSince(start))

	var dst algonrrd.Array
	if err := c.ExecuteContext(ctx, &dst); err != nil {
		return err
	}

	start = cpu.Ticks()

	for range bc.iters {
		if err := c.ExecuteContext(ctx, &dst); err != nil {
			return err
		}
	}

	elapsed := time.Duration(cpu.TicksSince(start))
	perOp := elapsed / time.Duration(bc.iters)
	rate := float64(dst.Len()) * float64(bc.iters) / elapsed.Seconds() / 1e6

	fmt.Fprintf(w, "%-16s %-8T %v -> %v passes=%d plan=%v exec=%v/op %.1f Msamples/s\n",
		bc.spec, T(0), bc.sizes, dst.Sizes(), c.PassCount(), plan, perOp, rate)

	return nil
}
