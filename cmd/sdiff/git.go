package main

import (
	"github.com/maxmalkin/sdiff/vcs"

	"github.com/scott-cotton/cli"
)

func gitInstall(cfg *GitConfig, cc *cli.Context, _ []string) error {
	if err := vcs.Install(cc.Out); err != nil {
		return fail(err)
	}
	return nil
}

func gitUninstall(cfg *GitConfig, cc *cli.Context, _ []string) error {
	if err := vcs.Uninstall(cc.Out); err != nil {
		return fail(err)
	}
	return nil
}

func gitStatus(cfg *GitConfig, cc *cli.Context, _ []string) error {
	if err := vcs.Status(cc.Out); err != nil {
		return fail(err)
	}
	return nil
}
