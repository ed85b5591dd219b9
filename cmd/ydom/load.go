package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ydom/jsonio"
	"github.com/signadot/ydom/node"
	"github.com/signadot/ydom/yamlio"
)

// loadFile decodes the documents of file, or of the command input if file
// is "-".
func loadFile(cfg *MainConfig, cc *cli.Context, file string) ([]node.Node, error) {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	f := cfg.factory()
	if cfg.inFormat(file) == jsonFormat {
		n, err := jsonio.Decode(f, d)
		if err != nil {
			return nil, err
		}
		return []node.Node{n}, nil
	}
	return yamlio.Decode(f, d)
}

// eachDoc calls fn on every document of files, or of the command input when
// there are none.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, fn func(node.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := loadFile(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		theLog.Debug("decoded", "file", file, "format", cfg.inFormat(file), "documents", len(docs))
		for i, doc := range docs {
			if err := fn(doc); err != nil {
				return fmt.Errorf("error processing %s document %d: %w", file, i, err)
			}
		}
	}
	return nil
}

// loadOne returns the first document of file.
func loadOne(cfg *MainConfig, cc *cli.Context, file string) (node.Node, error) {
	docs, err := loadFile(cfg, cc, file)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	theLog.Debug("decoded", "file", file, "format", cfg.inFormat(file), "documents", len(docs))
	switch len(docs) {
	case 0:
		return node.NullNode(), nil
	case 1:
	default:
		theLog.Warn("using the first document only", "file", file, "documents", len(docs))
	}
	return docs[0], nil
}

// writeDocs writes docs in format fmat. JSON documents are written one per
// line group, YAML documents as a stream.
func writeDocs(w io.Writer, fmat format, docs ...node.Node) error {
	if fmat == yamlFormat {
		return yamlio.Write(w, docs...)
	}
	for _, doc := range docs {
		d, err := jsonio.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		if _, err := w.Write(append(d, '\n')); err != nil {
			return err
		}
	}
	return nil
}
