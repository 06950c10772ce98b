package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/maxmalkin/sdiff/diff"
)

// Colors maps change types to sprint functions. A nil Colors renders
// uncolored text.
type Colors struct {
	Default func(string, ...any) string
	Marker  map[diff.ChangeType]func(string, ...any) string
	Body    map[diff.ChangeType]func(string, ...any) string
	Dim     func(string, ...any) string
}

func NewColors() *Colors {
	c := &Colors{
		Default: colorDefault,
		Marker: map[diff.ChangeType]func(string, ...any) string{
			diff.Added:    color.HiGreenString,
			diff.Removed:  color.HiRedString,
			diff.Modified: color.HiYellowString,
		},
		Body: map[diff.ChangeType]func(string, ...any) string{
			diff.Added:    color.GreenString,
			diff.Removed:  color.RedString,
			diff.Modified: color.YellowString,
		},
		Dim: color.New(color.Faint).SprintfFunc(),
	}
	for k, f := range c.Marker {
		c.Marker[k] = escapePercents(f)
	}
	for k, f := range c.Body {
		c.Body[k] = escapePercents(f)
	}
	c.Dim = escapePercents(c.Dim)
	return c
}

// escapePercents keeps literal '%' in rendered values from being
// interpreted as format verbs by the sprint functions.
func escapePercents(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) marker(t diff.ChangeType, s string) string {
	if c == nil {
		return s
	}
	if f := c.Marker[t]; f != nil {
		return f(s)
	}
	return c.Default(s)
}

func (c *Colors) body(t diff.ChangeType, s string) string {
	if c == nil {
		return s
	}
	if f := c.Body[t]; f != nil {
		return f(s)
	}
	return c.Default(s)
}

func (c *Colors) dim(s string) string {
	if c == nil || c.Dim == nil {
		return s
	}
	return c.Dim(s)
}
