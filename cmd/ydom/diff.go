package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/signadot/ydom/node"
	"github.com/signadot/ydom/yamlio"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadOne(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := loadOne(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	differs, err := diffNodes(cc.Out, a, b, len(cfg.dumpOpts(cc.Out)) != 0)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	theLog.Info("no differences", "a", args[0], "b", args[1])
	return nil
}

// diffNodes writes a line diff of the YAML renderings of a and b unless they
// are equal, and reports whether they differ.
func diffNodes(w io.Writer, a, b node.Node, colors bool) (bool, error) {
	if node.Equal(a, b) {
		return false, nil
	}
	ya, err := yamlio.Encode(a)
	if err != nil {
		return false, err
	}
	yb, err := yamlio.Encode(b)
	if err != nil {
		return false, err
	}
	dmp := diffpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(string(ya), string(yb))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)
	del, ins := fmt.Sprint, fmt.Sprint
	if colors {
		del, ins = color.New(color.FgRed).Sprint, color.New(color.FgGreen).Sprint
	}
	var buf strings.Builder
	for _, d := range diffs {
		prefix, paint := "  ", fmt.Sprint
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, paint = "- ", del
		case diffpatch.DiffInsert:
			prefix, paint = "+ ", ins
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(paint(prefix + line))
		}
	}
	if _, err := io.WriteString(w, buf.String()); err != nil {
		return false, err
	}
	return true, nil
}
