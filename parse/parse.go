package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/maxmalkin/sdiff/format"
	"github.com/maxmalkin/sdiff/ir"
)

// Parse decodes a document into an ir.Node. Without a format option
// the decoders are probed in the order JSON, YAML, TOML.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	if pOpts.format != nil {
		node, err := parseAs(data, *pOpts.format)
		if err != nil {
			return nil, tagged(pOpts.sourceTag, err)
		}
		return node, nil
	}
	for _, f := range format.AllFormats() {
		node, err := parseAs(data, f)
		if err == nil {
			return node, nil
		}
	}
	return nil, tagged(pOpts.sourceTag, ErrUnknownFormat)
}

// ParseFile reads and decodes path, choosing the decoder by file
// extension and falling back to probing for unknown extensions.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	// The extension-derived format goes first so an explicit format
	// option from the caller wins.
	head := []ParseOption{SourceTag(path)}
	if f, ferr := format.FromPath(path); ferr == nil {
		head = append(head, ParseFormat(f))
	}
	return Parse(data, append(head, opts...)...)
}

// ParseReader decodes a document from r, probing formats unless an
// option pins one.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Parse(data, opts...)
}

func parseAs(data []byte, f format.Format) (*ir.Node, error) {
	switch f {
	case format.JSONFormat:
		return parseJSON(data)
	case format.YAMLFormat:
		return parseYAML(data)
	case format.TOMLFormat:
		return parseTOML(data)
	}
	return nil, format.ErrBadFormat
}

func parseJSON(data []byte) (*ir.Node, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return fromValue(v)
}

func parseYAML(data []byte) (*ir.Node, error) {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return fromValue(v)
}

func parseTOML(data []byte) (*ir.Node, error) {
	var v map[string]interface{}
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return fromValue(v)
}

func tagged(tag string, err error) error {
	if tag == "" {
		return err
	}
	return fmt.Errorf("%s: %w", tag, err)
}
