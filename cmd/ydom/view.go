package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ydom/dump"
	"github.com/signadot/ydom/node"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	w := cc.Out
	opts := cfg.dumpOpts(w)
	if cfg.Indent > 0 {
		opts = append(opts, dump.WithIndent(cfg.Indent))
	}
	i := 0
	return eachDoc(cfg.MainConfig, cc, args, func(doc node.Node) error {
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing separator: %w", err)
			}
		}
		i++
		return dump.Write(w, doc, opts...)
	})
}
