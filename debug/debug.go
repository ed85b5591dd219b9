package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Build  bool
	Narrow bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Build = boolEnv("YDOM_DEBUG_BUILD")
	d.Narrow = boolEnv("YDOM_DEBUG_NARROW")
	d.Query = boolEnv("YDOM_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Build reports whether tree construction from events is logged.
func Build() bool {
	return d.Build
}

// Narrow reports whether implicit scalar resolution is logged.
func Narrow() bool {
	return d.Narrow
}

func Query() bool {
	return d.Query
}
