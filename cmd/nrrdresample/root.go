package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	algonrrd "github.com/cwbudde/algo-nrrd"
)

const version = "0.1.0"

// app holds one command tree with its configuration, so tests can build as
// many independent trees as they need.
type app struct {
	cfg  *viper.Viper
	log  *logrus.Logger
	root *cobra.Command
}

type option struct {
	name, usage, shorthand string
	defaultVal             any
	flagsets               []*pflag.FlagSet
}

func newApp() *app {
	a := &app{
		cfg: viper.New(),
		log: logrus.New(),
	}

	a.root = &cobra.Command{
		Use:   "nrrdresample",
		Short: "Resample N-dimensional arrays with separable kernels.",
		Long: `nrrdresample resamples raw little-endian arrays by separable convolution
and evaluates the reconstruction and derivative kernels of the engine.

Configuration can be given on the command line, in a configuration file
passed with --config, or in environment variables named 'NRRD_var' where
'var' is the flag name in upper case with dashes replaced by underscores,
for example NRRD_DEFAULT_KERNEL_PARM0.`,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}

	kernelCmd := &cobra.Command{
		Use:   "kernel",
		Short: "Inspect reconstruction kernels.",
	}

	listCmd := a.kernelListCmd()
	evalCmd := a.kernelEvalCmd()
	checkCmd := a.kernelCheckCmd()
	resampleCmd := a.resampleCmd()
	benchCmd := a.benchCmd()

	kernelCmd.AddCommand(listCmd, evalCmd, checkCmd)
	a.root.AddCommand(kernelCmd, resampleCmd, benchCmd, a.infoCmd(), a.versionCmd())

	persistent := []*pflag.FlagSet{a.root.PersistentFlags()}
	jobFlags := []*pflag.FlagSet{resampleCmd.Flags(), benchCmd.Flags()}

	options := []option{
		{
			name:       "config",
			usage:      "configuration file (yaml, toml or json)",
			defaultVal: "",
			flagsets:   persistent,
		},
		{
			name:       "log-level",
			usage:      "log level: trace, debug, info, warn or error",
			defaultVal: "info",
			flagsets:   persistent,
		},
		{
			name:       "default-kernel-parm0",
			usage:      "scale given to kernels whose first parameter is omitted",
			defaultVal: algonrrd.DefaultKernelParm0,
			flagsets:   persistent,
		},
		{
			name:       "workers",
			usage:      "scanline workers per pass; 0 uses GOMAXPROCS",
			shorthand:  "w",
			defaultVal: 0,
			flagsets:   jobFlags,
		},
		{
			name:       "precision",
			usage:      "intermediate precision: float32 or float64",
			defaultVal: "float64",
			flagsets:   jobFlags,
		},
		{
			name:       "boundary",
			usage:      "boundary policy: pad, bleed, wrap, weight or mirror",
			shorthand:  "b",
			defaultVal: "bleed",
			flagsets:   jobFlags,
		},
		{
			name:       "from",
			usage:      "first evaluation point",
			defaultVal: -2.0,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name:       "to",
			usage:      "last evaluation point",
			defaultVal: 2.0,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name:       "points",
			usage:      "number of evaluation points",
			shorthand:  "n",
			defaultVal: 9,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name:       "samples",
			usage:      "random evaluation points per kernel",
			defaultVal: 1000,
			flagsets:   []*pflag.FlagSet{checkCmd.Flags()},
		},
		{
			name:       "seed",
			usage:      "random seed",
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{checkCmd.Flags(), benchCmd.Flags()},
		},
		{
			name:       "tmf",
			usage:      "also list the TMF kernels",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{listCmd.Flags()},
		},
		{
			name:       "job",
			usage:      "job file (.yaml, .yml or .toml) describing the resample",
			shorthand:  "j",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "input",
			usage:      "raw little-endian input file",
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "output",
			usage:      "raw little-endian output file",
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "type",
			usage:      "input element type, e.g. uint8 or float32",
			shorthand:  "t",
			defaultVal: "float32",
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "sizes",
			usage:      "input axis sizes, fastest axis first",
			shorthand:  "s",
			defaultVal: []int{},
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "kernels",
			usage:      "kernel spec per axis; empty or '-' passes the axis through",
			shorthand:  "k",
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "samples-out",
			usage:      "output samples per axis; 0 keeps the input size",
			defaultVal: []int{},
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "type-out",
			usage:      "output element type; empty keeps the input type",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "pad",
			usage:      "value read outside the input with the pad boundary",
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "renormalize",
			usage:      "rescale weight rows to the kernel integral",
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "round",
			usage:      "round integer output to nearest, ties up",
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "clamp",
			usage:      "clamp integer output to the type range",
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "cheap",
			usage:      "keep kernels at native scale when downsampling",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "center",
			usage:      "centering of the input axes: cell or node",
			defaultVal: "cell",
			flagsets:   []*pflag.FlagSet{resampleCmd.Flags()},
		},
		{
			name:       "kernel",
			usage:      "kernel spec used on every axis",
			defaultVal: "cubic:0,0.5",
			flagsets:   []*pflag.FlagSet{benchCmd.Flags()},
		},
		{
			name:       "bench-sizes",
			usage:      "benchmark array sizes",
			defaultVal: []int{256, 256},
			flagsets:   []*pflag.FlagSet{benchCmd.Flags()},
		},
		{
			name:       "factor",
			usage:      "output size over input size on every axis",
			defaultVal: 1.5,
			flagsets:   []*pflag.FlagSet{benchCmd.Flags()},
		},
		{
			name:       "iters",
			usage:      "timed executions",
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{benchCmd.Flags()},
		},
	}

	a.cfg.SetEnvPrefix("NRRD")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()

	for _, o := range options {
		for i, set := range o.flagsets {
			if i != 0 {
				set.AddFlag(o.flagsets[0].Lookup(o.name))
				continue
			}

			addFlag(set, o)

			if err := a.cfg.BindPFlag(o.name, set.Lookup(o.name)); err != nil {
				panic(err)
			}
		}
	}

	return a
}

func addFlag(set *pflag.FlagSet, o option) {
	switch v := o.defaultVal.(type) {
	case string:
		set.StringP(o.name, o.shorthand, v, o.usage)
	case []string:
		set.StringSliceP(o.name, o.shorthand, v, o.usage)
	case bool:
		set.BoolP(o.name, o.shorthand, v, o.usage)
	case int:
		set.IntP(o.name, o.shorthand, v, o.usage)
	case []int:
		set.IntSliceP(o.name, o.shorthand, v, o.usage)
	case float64:
		set.Float64P(o.name, o.shorthand, v, o.usage)
	default:
		panic(fmt.Sprintf("option %s: invalid default %T", o.name, o.defaultVal))
	}
}

// setup reads the configuration file, if there is one, and configures
// logging.
func (a *app) setup(cmd *cobra.Command) error {
	if path := a.cfg.GetString("config"); path != "" {
		a.cfg.SetConfigFile(path)

		if err := a.cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("nrrdresample: problem reading configuration file: %w", err)
		}
	}

	level, err := logrus.ParseLevel(a.cfg.GetString("log-level"))
	if err != nil {
		return err
	}

	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(level)

	return nil
}

// parseOptions returns the kernel parser configured by
// --default-kernel-parm0.
func (a *app) parseOptions() algonrrd.ParseOptions {
	return algonrrd.ParseOptions{DefaultParm0: a.cfg.GetFloat64("default-kernel-parm0")}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nrrdresample v%s\n", version)
		},
		DisableAutoGenTag: true,
	}
}
