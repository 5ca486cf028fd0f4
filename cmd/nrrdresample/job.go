package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	algonrrd "github.com/cwbudde/algo-nrrd"
)

var errJobFormat = errors.New("unsupported job file")

// job is a complete resample: where the data lives, its layout, and what to
// do with every axis. Unset policy fields take the engine defaults.
type job struct {
	Input       string    `yaml:"input" toml:"input"`
	Output      string    `yaml:"output" toml:"output"`
	Type        string    `yaml:"type" toml:"type"`
	Sizes       []int     `yaml:"sizes" toml:"sizes"`
	Center      string    `yaml:"center" toml:"center"`
	TypeOut     string    `yaml:"typeOut" toml:"typeOut"`
	Boundary    string    `yaml:"boundary" toml:"boundary"`
	Pad         float64   `yaml:"pad" toml:"pad"`
	Renormalize *bool     `yaml:"renormalize" toml:"renormalize"`
	Round       *bool     `yaml:"round" toml:"round"`
	Clamp       *bool     `yaml:"clamp" toml:"clamp"`
	Cheap       bool      `yaml:"cheap" toml:"cheap"`
	Precision   string    `yaml:"precision" toml:"precision"`
	Axes        []jobAxis `yaml:"axes" toml:"axes"`
}

type jobAxis struct {
	Kernel  string  `yaml:"kernel" toml:"kernel"`
	Samples int     `yaml:"samples" toml:"samples"`
	Min     float64 `yaml:"min" toml:"min"`
	Max     float64 `yaml:"max" toml:"max"`
}

// loadJob reads a job file, choosing the format by extension.
func loadJob(path string) (job, error) {
	f, err := os.Open(path)
	if err != nil {
		return job{}, err
	}
	defer f.Close()

	j, err := decodeJob(f, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return job{}, fmt.Errorf("%s: %w", path, err)
	}

	return j, nil
}

// decodeJob decodes a job in format "yaml", "yml" or "toml". Unknown keys
// are errors.
func decodeJob(r io.Reader, format string) (job, error) {
	var j job

	switch format {
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)

		if err := dec.Decode(&j); err != nil {
			return job{}, err
		}
	case "toml":
		md, err := toml.NewDecoder(r).Decode(&j)
		if err != nil {
			return job{}, err
		}

		if keys := md.Undecoded(); len(keys) > 0 {
			return job{}, fmt.Errorf("unknown keys %v", keys)
		}
	default:
		return job{}, fmt.Errorf("%w: %q", errJobFormat, format)
	}

	return j, nil
}

// request resolves the textual job into the input type and a resample
// request.
func (j job) request(opts algonrrd.ParseOptions) (algonrrd.Type, algonrrd.Request, error) {
	var req algonrrd.Request

	typ, err := algonrrd.ParseType(j.Type)
	if err != nil {
		return 0, req, err
	}

	if !typ.Valid() {
		return 0, req, fmt.Errorf("%w: input type %v", algonrrd.ErrInvalidType, typ)
	}

	if len(j.Axes) > len(j.Sizes) {
		return 0, req, fmt.Errorf("%w: %d axis entries for %d sizes", algonrrd.ErrShapeMismatch, len(j.Axes), len(j.Sizes))
	}

	req = algonrrd.NewRequest(len(j.Sizes))
	req.Pad = j.Pad
	req.Cheap = j.Cheap

	if j.Boundary != "" {
		if req.Boundary, err = algonrrd.ParseBoundary(j.Boundary); err != nil {
			return 0, req, err
		}
	}

	if j.Center != "" {
		if req.Center, err = algonrrd.ParseCenter(j.Center); err != nil {
			return 0, req, err
		}
	}

	if j.TypeOut != "" {
		if req.TypeOut, err = algonrrd.ParseType(j.TypeOut); err != nil {
			return 0, req, err
		}
	}

	for _, b := range []struct {
		src *bool
		dst *bool
	}{
		{j.Renormalize, &req.Renormalize},
		{j.Round, &req.Round},
		{j.Clamp, &req.Clamp},
	} {
		if b.src != nil {
			*b.dst = *b.src
		}
	}

	for i, ax := range j.Axes {
		if ax.Kernel == "" || ax.Kernel == "-" {
			continue
		}

		spec, err := opts.Parse(ax.Kernel)
		if err != nil {
			return 0, req, fmt.Errorf("axis %d: %w", i, err)
		}

		req.Axes[i] = algonrrd.AxisRequest{Kernel: spec, Samples: ax.Samples, Min: ax.Min, Max: ax.Max}
	}

	return typ, req, nil
}

// resample runs j on src and returns the result.
func (a *app) resample(ctx context.Context, j job, src *algonrrd.Array, req algonrrd.Request) (*algonrrd.Array, error) {
	opts := []algonrrd.Option{
		algonrrd.WithLogger(a.log),
		algonrrd.WithWorkers(a.cfg.GetInt("workers")),
	}

	precision := j.Precision
	if precision == "" {
		precision = a.cfg.GetString("precision")
	}

	var (
		dst algonrrd.Array
		err error
	)

	switch precision {
	case "float32":
		err = algonrrd.Resample[float32](ctx, &dst, src, req, opts...)
	case "float64", "":
		err = algonrrd.Resample[float64](ctx, &dst, src, req, opts...)
	default:
		return nil, fmt.Errorf("%w: precision %q", algonrrd.ErrInvalidType, precision)
	}

	if err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{
		"sizesIn":  src.Sizes(),
		"sizesOut": dst.Sizes(),
		"typeOut":  dst.Type,
	}).Info("resampled")

	return &dst, nil
}
