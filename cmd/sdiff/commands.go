package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{MaxValueLength: 80}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "output style: terminal/t, plain/p, json/j",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.styleOpt), "(style)"),
		},
		&cli.Opt{
			Name:        "ignore",
			Description: "glob pattern of paths to drop, repeatable",
			Type:        cli.NamedFuncOpt(appendOpt(&cfg.Ignore), "(pattern)"),
		},
		&cli.Opt{
			Name:        "only",
			Description: "glob pattern of paths to keep, repeatable",
			Type:        cli.NamedFuncOpt(appendOpt(&cfg.Only), "(pattern)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sdiff").
		WithSynopsis("sdiff [opts] <old-file> <new-file>").
		WithDescription("sdiff compares json, yaml and toml documents by meaning rather than by text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sdiffMain(cfg, cc, args)
		}).
		WithSubs(GitCommand(cfg))
}

func GitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GitConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Git, "git").
		WithSynopsis("git <install|uninstall|status>").
		WithDescription("manage the git difftool and diff-driver configuration").
		WithSubs(
			cli.NewCommand("install").
				WithSynopsis("install").
				WithDescription("register sdiff in the global git configuration").
				WithRun(func(cc *cli.Context, args []string) error {
					return gitInstall(cfg, cc, args)
				}),
			cli.NewCommand("uninstall").
				WithSynopsis("uninstall").
				WithDescription("remove sdiff from the global git configuration").
				WithRun(func(cc *cli.Context, args []string) error {
					return gitUninstall(cfg, cc, args)
				}),
			cli.NewCommand("status").
				WithAliases("st").
				WithSynopsis("status").
				WithDescription("show the sdiff-related git configuration").
				WithRun(func(cc *cli.Context, args []string) error {
					return gitStatus(cfg, cc, args)
				}))
}
