package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/ydom/node"
)

// convert reads documents in their input format and writes them in the
// other one, unless -j, -y or -O name the output format. Here -j and -y
// only apply to the output.
func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	in := *cfg.MainConfig
	in.J, in.Y = false, false
	var docs []node.Node
	err = eachDoc(&in, cc, args, func(doc node.Node) error {
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return err
	}
	return writeDocs(cc.Out, cfg.convertFormat(in.inFormat(args[0])), docs...)
}

func (cfg *ConvertConfig) convertFormat(in format) format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return jsonFormat
	case cfg.Y:
		return yamlFormat
	case in == jsonFormat:
		return yamlFormat
	}
	return jsonFormat
}
