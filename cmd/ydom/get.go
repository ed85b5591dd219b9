package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ydom/node"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if _, err := node.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	var res []node.Node
	err = eachDoc(cfg.MainConfig, cc, args[1:], func(doc node.Node) error {
		v := node.At(doc, path)
		if !v.Exists() {
			theLog.Info("path not found", "path", path)
			return nil
		}
		res = append(res, v)
		return nil
	})
	if err != nil {
		return err
	}
	return writeDocs(cc.Out, cfg.outFormat(), res...)
}
