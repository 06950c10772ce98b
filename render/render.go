package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/maxmalkin/sdiff/diff"
	"github.com/maxmalkin/sdiff/ir"
)

// Render writes d to w in the configured style.
func Render(d *diff.Diff, w io.Writer, opts ...RenderOption) error {
	o := defaultOpts()
	for _, opt := range opts {
		opt(o)
	}
	if o.style == JSONStyle {
		return renderJSON(d, w)
	}
	return renderText(d, w, o)
}

func renderText(d *diff.Diff, w io.Writer, o *renderOpts) error {
	var shown []*diff.Change
	for _, c := range d.Changes {
		if o.compact && c.Type == diff.Unchanged {
			continue
		}
		shown = append(shown, c)
	}
	if len(shown) == 0 {
		_, err := io.WriteString(w, o.colors.dim("No changes detected.")+"\n")
		return err
	}
	var b strings.Builder
	for _, c := range shown {
		b.WriteString(formatChange(c, o))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(formatSummary(d.Stats))
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func formatChange(c *diff.Change, o *renderOpts) string {
	path := FormatPath(c.Path)
	colors := o.colors
	switch c.Type {
	case diff.Added:
		v := c.New.Preview(o.maxValueLength)
		return fmt.Sprintf("%s %s: %s",
			colors.marker(c.Type, "+"),
			colors.body(c.Type, path),
			colors.body(c.Type, v))
	case diff.Removed:
		v := c.Old.Preview(o.maxValueLength)
		return fmt.Sprintf("%s %s: %s",
			colors.marker(c.Type, "-"),
			colors.body(c.Type, path),
			colors.body(c.Type, v))
	case diff.Modified:
		// inline diffs need color to distinguish inserts from deletes
		if o.inlineStrings && colors != nil &&
			c.Old.Type == ir.StringType && c.New.Type == ir.StringType {
			return fmt.Sprintf("%s %s: %s",
				colors.marker(c.Type, "•"),
				colors.body(c.Type, path),
				inlineStringDiff(c.Old.String, c.New.String, colors))
		}
		ov := c.Old.Preview(o.maxValueLength)
		nv := c.New.Preview(o.maxValueLength)
		return fmt.Sprintf("%s %s: %s %s %s",
			colors.marker(c.Type, "•"),
			colors.body(c.Type, path),
			colors.body(c.Type, ov),
			colors.marker(c.Type, "→"),
			colors.body(c.Type, nv))
	default:
		v := c.Old.Preview(o.maxValueLength)
		return colors.dim(fmt.Sprintf("  %s: %s", path, v))
	}
}

// FormatPath joins path segments with dots, concatenating index
// segments directly: ["users", "[0]", "age"] renders as users[0].age.
// The empty path names the document root.
func FormatPath(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	var b strings.Builder
	for i, seg := range path {
		if diff.IsIndexSegment(seg) {
			b.WriteString(seg)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func formatSummary(s diff.Stats) string {
	if s.IsEmpty() && s.Unchanged == 0 {
		return "Summary: No changes"
	}
	var parts []string
	if s.Added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", s.Added))
	}
	if s.Removed > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", s.Removed))
	}
	if s.Modified > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", s.Modified))
	}
	if s.Unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", s.Unchanged))
	}
	if len(parts) == 0 {
		return "Summary: No changes"
	}
	return "Summary: " + strings.Join(parts, ", ")
}
