package render

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/maxmalkin/sdiff/diff"
)

// inlineStringDiff renders a character-level diff of two strings,
// deletions in the removed color and insertions in the added color.
func inlineStringDiff(old, new string, colors *Colors) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(old, new, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	b.WriteByte('"')
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString(colors.body(diff.Removed, d.Text))
		case diffpatch.DiffInsert:
			b.WriteString(colors.body(diff.Added, d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	b.WriteByte('"')
	return b.String()
}
