// Package debug holds env-gated debug switches, read once at startup.
//
// Set SDIFF_DEBUG_PARSE=1 to trace format probing, SDIFF_DEBUG_DIFF=1
// to trace diff invocations from the CLI.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SDIFF_DEBUG_PARSE")
	d.Diff = boolEnv("SDIFF_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}

func Diff() bool {
	return d.Diff
}

// Logf writes a debug line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "sdiff: "+format+"\n", args...)
}
