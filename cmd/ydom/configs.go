package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/ydom/dump"
	"github.com/signadot/ydom/node"
)

type format int

const (
	yamlFormat format = iota
	jsonFormat
)

func (f format) String() string {
	if f == jsonFormat {
		return "json"
	}
	return "yaml"
}

func parseFormat(v string) (format, error) {
	switch strings.ToLower(v) {
	case "y", "yaml", "yml":
		return yamlFormat, nil
	case "j", "json":
		return jsonFormat, nil
	}
	return 0, fmt.Errorf("unknown format %q", v)
}

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`
	Gops  bool `cli:"name=gops desc='run a gops agent while the command runs'"`
	V     bool `cli:"name=v aliases=verbose desc='log progress to stderr'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format
	Precision           node.Precision

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := parseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) precisionOpt(_ *cli.Context, v string) (any, error) {
	p, err := node.ParsePrecision(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Precision = p
	return p, nil
}

func (cfg *MainConfig) factory() *node.Factory {
	return node.NewFactory(node.WithPrecision(cfg.Precision))
}

// inFormat is the format for reading file, from the options or else its
// extension.
func (cfg *MainConfig) inFormat(file string) format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.J:
		return jsonFormat
	case cfg.Y:
		return yamlFormat
	}
	if strings.EqualFold(filepath.Ext(file), ".json") {
		return jsonFormat
	}
	return yamlFormat
}

func (cfg *MainConfig) outFormat() format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return jsonFormat
	}
	return yamlFormat
}

func (cfg *MainConfig) dumpOpts(w io.Writer) []dump.Option {
	if cfg.Color {
		return []dump.Option{dump.WithColors(dump.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []dump.Option{dump.WithColors(dump.NewColors())}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	Indent int `cli:"name=indent desc='spaces per level'"`
	View   *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Filter bool `cli:"name=f aliases=filter desc='keep the elements of sequence documents for which expr is true'"`
	Query  *cli.Command
}
