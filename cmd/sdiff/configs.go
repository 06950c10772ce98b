package main

import (
	"fmt"
	"io"
	"os"

	"github.com/maxmalkin/sdiff/diff"
	"github.com/maxmalkin/sdiff/parse"
	"github.com/maxmalkin/sdiff/render"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact          bool `cli:"name=compact desc='hide unchanged entries'"`
	MaxValueLength   int  `cli:"name=max-value-length aliases=maxlen desc='truncate value previews to this many characters'"`
	IgnoreWhitespace bool `cli:"name=ignore-whitespace aliases=w desc='collapse whitespace runs when comparing strings'"`
	NullAsMissing    bool `cli:"name=null-as-missing desc='treat explicit nulls like absent keys'"`
	LCS              bool `cli:"name=lcs desc='align arrays with a longest-common-subsequence edit script'"`
	Inline           bool `cli:"name=inline desc='show modified strings as inline diffs (needs color)'"`
	Color            bool `cli:"name=color desc='colorize output'"`
	Quiet            bool `cli:"name=q aliases=quiet desc='no output, only the exit code'"`
	Verbose          bool `cli:"name=v aliases=verbose desc='report comparison detail on stderr'"`

	J bool `cli:"name=j aliases=json desc='parse inputs as json'"`
	Y bool `cli:"name=y aliases=yaml desc='parse inputs as yaml'"`
	T bool `cli:"name=t aliases=toml desc='parse inputs as toml'"`

	Style  *render.Style
	Ignore []string
	Only   []string

	Main *cli.Command
}

func (cfg *MainConfig) styleOpt(_ *cli.Context, v string) (any, error) {
	s, err := render.ParseStyle(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Style = &s
	return s, nil
}

func appendOpt(dst *[]string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		*dst = append(*dst, v)
		return v, nil
	})
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	res := []parse.ParseOption{parse.SourceTag(path)}
	switch {
	case cfg.J:
		res = append(res, parse.ParseJSON())
	case cfg.Y:
		res = append(res, parse.ParseYAML())
	case cfg.T:
		res = append(res, parse.ParseTOML())
	}
	return res
}

func (cfg *MainConfig) diffConfig() *diff.Config {
	dcfg := &diff.Config{
		IgnoreWhitespace:   cfg.IgnoreWhitespace,
		TreatNullAsMissing: cfg.NullAsMissing,
	}
	if cfg.LCS {
		dcfg.ArrayStrategy = diff.LCS
	}
	return dcfg
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.RenderOption {
	res := []render.RenderOption{
		render.MaxValueLength(cfg.MaxValueLength),
		render.InlineStrings(cfg.Inline),
	}
	if optSet(cfg.Main, "compact") {
		res = append(res, render.RenderCompact(cfg.Compact))
	}

	style := render.PlainStyle
	if isTerminal(w) {
		style = render.TerminalStyle
	}
	if cfg.Style != nil {
		style = *cfg.Style
	}
	res = append(res, render.RenderStyle(style))

	colored := style == render.TerminalStyle
	if optSet(cfg.Main, "color") {
		colored = cfg.Color
	}
	if colored && style != render.JSONStyle {
		res = append(res, render.RenderColors(render.NewColors()))
	}
	return res
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// it would be nicer if cli supported
// pointers to builtin types as well...
func optSet(cmd *cli.Command, name string) bool {
	for _, opt := range cmd.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

type GitConfig struct {
	*MainConfig

	Git *cli.Command
}
