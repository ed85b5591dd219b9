package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ydom/node"
	"github.com/signadot/ydom/query"
)

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	f := cfg.factory()
	var res []node.Node
	err = eachDoc(cfg.MainConfig, cc, args[1:], func(doc node.Node) error {
		var (
			r   node.Node
			err error
		)
		if cfg.Filter {
			r, err = q.Filter(f, doc)
		} else {
			r, err = q.Eval(f, doc)
		}
		if err != nil {
			return err
		}
		res = append(res, r)
		return nil
	})
	if err != nil {
		return err
	}
	return writeDocs(cc.Out, cfg.outFormat(), res...)
}
