package render

import "fmt"

// Style selects the output representation.
type Style int

const (
	TerminalStyle Style = iota
	PlainStyle
	JSONStyle
)

func (s Style) String() string {
	switch s {
	case TerminalStyle:
		return "terminal"
	case PlainStyle:
		return "plain"
	case JSONStyle:
		return "json"
	}
	return "<unknown style>"
}

func ParseStyle(v string) (Style, error) {
	s, ok := map[string]Style{
		"terminal": TerminalStyle,
		"t":        TerminalStyle,
		"plain":    PlainStyle,
		"p":        PlainStyle,
		"json":     JSONStyle,
		"j":        JSONStyle,
	}[v]
	if !ok {
		return 0, fmt.Errorf("unknown output style %q", v)
	}
	return s, nil
}

type renderOpts struct {
	style          Style
	compact        bool
	maxValueLength int
	inlineStrings  bool
	colors         *Colors
}

func defaultOpts() *renderOpts {
	return &renderOpts{
		style:          PlainStyle,
		compact:        true,
		maxValueLength: 80,
	}
}

type RenderOption func(*renderOpts)

func RenderStyle(s Style) RenderOption {
	return func(o *renderOpts) { o.style = s }
}

// RenderCompact hides unchanged entries. Defaults to true.
func RenderCompact(v bool) RenderOption {
	return func(o *renderOpts) { o.compact = v }
}

// MaxValueLength bounds value previews. Defaults to 80.
func MaxValueLength(n int) RenderOption {
	return func(o *renderOpts) { o.maxValueLength = n }
}

// InlineStrings renders modified string values as a character-level
// diff instead of an old/new pair. Terminal style only.
func InlineStrings(v bool) RenderOption {
	return func(o *renderOpts) { o.inlineStrings = v }
}

// RenderColors colorizes output; implies the terminal style's
// treatment of change markers.
func RenderColors(c *Colors) RenderOption {
	return func(o *renderOpts) { o.colors = c }
}
