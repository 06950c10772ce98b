// Package parse turns JSON, YAML and TOML documents into ir.Node
// trees.
//
// Parse accepts raw bytes and functional options; with no format
// option it probes JSON, then YAML, then TOML. ParseFile detects the
// format from the file extension first and falls back to probing.
//
// All decoded numbers are represented as float64; integers beyond 2^53
// lose precision. This is an accepted limitation of the value model.
package parse
