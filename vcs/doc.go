// Package vcs wires sdiff into git as a difftool and diff driver.
//
// Install, Uninstall and Status shell out to the git binary to manage
// the global configuration keys; DetectDriverArgs recognizes the
// seven-argument calling convention git uses for external diff
// drivers.
package vcs
