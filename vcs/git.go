package vcs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

var (
	ErrGitNotFound        = errors.New("git is not installed or not in PATH")
	ErrExecutableNotFound = errors.New("failed to determine sdiff executable path")
)

var configKeys = []string{
	"difftool.sdiff.cmd",
	"difftool.sdiff.prompt",
	"diff.sdiff.command",
}

// Install registers sdiff as a git difftool and diff driver in the
// global git configuration.
func Install(w io.Writer) error {
	exe, err := executablePath()
	if err != nil {
		return err
	}
	if err := gitConfigSet("difftool.sdiff.cmd", fmt.Sprintf("%s \"$LOCAL\" \"$REMOTE\"", exe)); err != nil {
		return err
	}
	if err := gitConfigSet("diff.sdiff.command", exe); err != nil {
		return err
	}
	if err := gitConfigSet("difftool.sdiff.prompt", "false"); err != nil {
		return err
	}

	fmt.Fprintln(w, "Successfully installed sdiff as git difftool.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  git difftool -t sdiff HEAD~1 -- file.json")
	fmt.Fprintln(w, "  git difftool -t sdiff branch1 branch2 -- config.yaml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To use automatically for specific files, add to .gitattributes:")
	fmt.Fprintln(w, "  *.json diff=sdiff")
	fmt.Fprintln(w, "  *.yaml diff=sdiff")
	fmt.Fprintln(w, "  *.toml diff=sdiff")
	return nil
}

// Uninstall removes the sdiff keys from the global git configuration.
func Uninstall(w io.Writer) error {
	for _, key := range configKeys {
		if err := gitConfigUnset(key); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "Successfully uninstalled sdiff from git configuration.")
	return nil
}

// Status prints the current sdiff-related git configuration.
func Status(w io.Writer) error {
	fmt.Fprintln(w, "Git sdiff configuration status:")
	fmt.Fprintln(w)
	configured := false
	for _, key := range configKeys {
		value, err := gitConfigGet(key)
		if err != nil {
			fmt.Fprintf(w, "  %s: (not configured)\n", key)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", key, value)
		configured = true
	}
	fmt.Fprintln(w)
	if configured {
		fmt.Fprintln(w, "sdiff is configured as a git difftool.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Usage:")
		fmt.Fprintln(w, "  git difftool -t sdiff HEAD~1 -- file.json")
	} else {
		fmt.Fprintln(w, "sdiff is not configured. Run 'sdiff git install' to set up.")
	}
	return nil
}

func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", ErrExecutableNotFound
	}
	return exe, nil
}

func gitConfigSet(key, value string) error {
	out, err := exec.Command("git", "config", "--global", key, value).CombinedOutput()
	if err != nil {
		return gitErr(err, out)
	}
	return nil
}

func gitConfigUnset(key string) error {
	cmd := exec.Command("git", "config", "--global", "--unset", key)
	out, err := cmd.CombinedOutput()
	if err != nil {
		// exit status 5 means the key was not set; that is fine
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 5 {
			return nil
		}
		return gitErr(err, out)
	}
	return nil
}

func gitConfigGet(key string) (string, error) {
	out, err := exec.Command("git", "config", "--global", "--get", key).Output()
	if err != nil {
		return "", gitErr(err, nil)
	}
	return strings.TrimSpace(string(out)), nil
}

func gitErr(err error, out []byte) error {
	if errors.Is(err, exec.ErrNotFound) {
		return ErrGitNotFound
	}
	msg := strings.TrimSpace(string(out))
	if msg == "" {
		return fmt.Errorf("git command failed: %w", err)
	}
	return fmt.Errorf("git command failed: %s", msg)
}
