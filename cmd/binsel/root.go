package main

import (
	"encoding/json"
	"io"
	"os"

	"histopt/config"
	"histopt/infra/errorx"
	"histopt/infra/errorx/errCode"
	"histopt/infra/observe/log/staticLog"
	"histopt/stats/histogram/binselect"
	"histopt/stats/histogram/hist"
	"histopt/stats/sample"

	"github.com/spf13/cobra"
)

type output struct {
	Bins     int                   `json:"bins"`
	Counts   []int                 `json:"counts"`
	BinWidth float64               `json:"bin_width"`
	Edges    []hist.HistogramBin   `json:"edges"`
	Summary  sample.Summary        `json:"summary"`
	Dropped  uint                  `json:"dropped,omitempty"`
	Trace    []binselect.Candidate `json:"trace,omitempty"`
}

type options struct {
	cfgFile  string
	format   string
	jsonPath string
	dropBad  bool
	trace    bool
}

func newRootCmd() *cobra.Command {
	opt := &options{}
	cmd := &cobra.Command{
		Use:           "binsel [file]",
		Short:         "Choose the bin count of a regular histogram by penalized likelihood",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opt, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opt.cfgFile, "config", "", "yaml configuration file")
	f.StringVar(&opt.format, "format", config.FORMAT_LINES, "input format: lines | json")
	f.StringVar(&opt.jsonPath, "json-path", "@this", "gjson path of the sample in json input")
	f.BoolVar(&opt.dropBad, "drop-non-finite", false, "drop NaN/Inf values instead of failing")
	f.BoolVar(&opt.trace, "trace", false, "include the score of every candidate bin count")
	return cmd
}

func run(cmd *cobra.Command, opt *options, args []string) error {
	in := config.Default().Input
	if opt.cfgFile != "" {
		if err := config.Init(opt.cfgFile); err != nil {
			return err
		}
		in = config.Get().Input
	}
	// 命令行显式指定时覆盖配置文件
	flags := cmd.Flags()
	if flags.Changed("format") {
		in.Format = opt.format
	}
	if flags.Changed("json-path") {
		in.JSONPath = opt.jsonPath
	}
	if flags.Changed("drop-non-finite") {
		in.DropNonFinite = opt.dropBad
	}

	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errorx.Wrap(errCode.IO_ERROR, err, "open sample")
		}
		defer f.Close()
		r = f
	}

	x, err := readSample(r, in)
	if err != nil {
		return err
	}

	var dropped uint
	if in.DropNonFinite {
		clean, mask := sample.MaskNonFinite(x)
		if dropped = mask.Count(); dropped > 0 {
			staticLog.Log.Warnf("dropped %d non-finite values of %d", dropped, len(x))
		}
		x = clean
	}

	sel := binselect.NewSelector()
	res, err := sel.Choose(x)
	if err != nil {
		return err
	}
	out := output{
		Bins:     res.Bins,
		Counts:   res.Counts,
		BinWidth: res.BinWidth,
		Edges:    hist.FromResult(res),
		Summary:  sample.Describe(x),
		Dropped:  dropped,
	}
	if opt.trace {
		if out.Trace, err = sel.Trace(x); err != nil {
			return err
		}
	}
	staticLog.Log.Infof("n=%d bins=%d", len(x), res.Bins)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func readSample(r io.Reader, in config.InputConfig) ([]float64, error) {
	switch in.Format {
	case config.FORMAT_LINES:
		return sample.ParseLines(r)
	case config.FORMAT_JSON:
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, errorx.Wrap(errCode.IO_ERROR, err, "read sample")
		}
		return sample.ParseJSON(b, in.JSONPath)
	default:
		return nil, errorx.New(errCode.INVALID_VALUE, "invalid input format: "+in.Format)
	}
}
