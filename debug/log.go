package debug

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/signadot/ydom/dump"
	"github.com/signadot/ydom/node"
)

// Logf writes to stderr. Node arguments are rendered as outlines and Go
// maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case node.Node:
			args[i] = dump.String(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
