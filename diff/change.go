package diff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maxmalkin/sdiff/ir"
)

type ChangeType int

const (
	// Added values exist in the new tree only.
	Added ChangeType = iota
	// Removed values exist in the old tree only.
	Removed
	// Modified values exist in both trees with different content.
	Modified
	// Unchanged values exist in both trees with equal content. The
	// engine does not currently emit Unchanged changes; equal leaves
	// are omitted.
	Unchanged
)

func (c ChangeType) String() string {
	s, ok := map[ChangeType]string{
		Added:     "added",
		Removed:   "removed",
		Modified:  "modified",
		Unchanged: "unchanged",
	}[c]
	if ok {
		return s
	}
	return "<unknown change type>"
}

func (c ChangeType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ChangeType) UnmarshalText(d []byte) error {
	ct, ok := map[string]ChangeType{
		"added":     Added,
		"removed":   Removed,
		"modified":  Modified,
		"unchanged": Unchanged,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized change type %q", d)
	}
	*c = ct
	return nil
}

// Change is a single reported difference. Path locates the value in
// the compared trees: object keys appear verbatim, array positions as
// bracketed indices produced by [IndexSegment].
//
// Old is nil exactly when Type is Added; New is nil exactly when Type
// is Removed.
type Change struct {
	Path []string
	Type ChangeType
	Old  *ir.Node
	New  *ir.Node
}

// IndexSegment renders an array index as a path segment.
func IndexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// IsIndexSegment reports whether a path segment was produced by
// IndexSegment rather than taken from an object key. A literal key
// starting with '[' is indistinguishable; keys of that shape are rare
// in configuration documents and the ambiguity is accepted.
func IsIndexSegment(seg string) bool {
	return strings.HasPrefix(seg, "[")
}

// Stats aggregates the change counts of a Diff. It is always derived
// from the change list, never maintained independently.
type Stats struct {
	Added     int
	Removed   int
	Modified  int
	Unchanged int
}

// Total returns the number of effective changes, excluding Unchanged.
func (s Stats) Total() int {
	return s.Added + s.Removed + s.Modified
}

func (s Stats) IsEmpty() bool {
	return s.Total() == 0
}

// Tally recomputes Stats from a change list.
func Tally(changes []*Change) Stats {
	var s Stats
	for _, c := range changes {
		switch c.Type {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Modified:
			s.Modified++
		case Unchanged:
			s.Unchanged++
		}
	}
	return s
}

// Diff is an immutable snapshot of a comparison: the ordered change
// list plus its aggregated stats.
type Diff struct {
	Changes []*Change
	Stats   Stats
}

func (d *Diff) IsEmpty() bool {
	return d.Stats.IsEmpty()
}
