package main

import (
	"fmt"
	"os"

	"github.com/maxmalkin/sdiff/debug"
	"github.com/maxmalkin/sdiff/diff"
	"github.com/maxmalkin/sdiff/filter"
	"github.com/maxmalkin/sdiff/ir"
	"github.com/maxmalkin/sdiff/parse"
	"github.com/maxmalkin/sdiff/render"
	"github.com/maxmalkin/sdiff/vcs"

	"github.com/scott-cotton/cli"
)

func sdiffMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(2)
	}
	if count(cfg.J, cfg.Y, cfg.T) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml] -t[oml]", cli.ErrUsage)
	}
	if oldFile, newFile, ok := vcs.DetectDriverArgs(args); ok {
		if debug.Diff() {
			debug.Logf("git diff-driver invocation for %s", args[0])
		}
		args = []string{oldFile, newFile}
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			return sub.Run(cc, args[1:])
		}
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: sdiff requires two files to compare, got %d arguments", cli.ErrUsage, len(args))
	}
	return compare(cfg, cc, args[0], args[1])
}

func compare(cfg *MainConfig, cc *cli.Context, oldPath, newPath string) error {
	oldNode, err := load(cfg, oldPath)
	if err != nil {
		return fail(err)
	}
	newNode, err := load(cfg, newPath)
	if err != nil {
		return fail(err)
	}

	d := diff.Compute(oldNode, newNode, cfg.diffConfig())
	if fcfg := filter.NewConfig(cfg.Ignore, cfg.Only); fcfg.HasPatterns() {
		d = filter.Apply(d, fcfg)
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "sdiff: %s vs %s: %d added, %d removed, %d modified\n",
			oldPath, newPath, d.Stats.Added, d.Stats.Removed, d.Stats.Modified)
	}
	if !cfg.Quiet {
		if err := render.Render(d, cc.Out, cfg.renderOpts(cc.Out)...); err != nil {
			return fail(err)
		}
	}
	if !d.IsEmpty() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// load reads and parses one side of the comparison. Git hands /dev/null
// for the missing side of a created or deleted file; that side becomes
// an explicit null so the whole document reports as one change.
func load(cfg *MainConfig, path string) (*ir.Node, error) {
	if vcs.IsNullFile(path) {
		return ir.Null(), nil
	}
	if debug.Parse() {
		debug.Logf("parsing %s", path)
	}
	return parse.ParseFile(path, cfg.parseOpts(path)...)
}

func fail(err error) error {
	fmt.Fprintf(os.Stderr, "sdiff: %v\n", err)
	return cli.ExitCodeErr(2)
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
