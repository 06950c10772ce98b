package diff

import "github.com/maxmalkin/sdiff/ir"

// arraysPositional compares elements at the same index and reports
// the tail of the longer array wholesale. No alignment is attempted.
func (d *differ) arraysPositional(old, new []*ir.Node, path []string) {
	m := len(old)
	if len(new) < m {
		m = len(new)
	}
	for i := 0; i < m; i++ {
		d.nodes(old[i], new[i], append(path, IndexSegment(i)))
	}
	for i := m; i < len(old); i++ {
		d.emit(append(path, IndexSegment(i)), Removed, old[i], nil)
	}
	for i := m; i < len(new); i++ {
		d.emit(append(path, IndexSegment(i)), Added, nil, new[i])
	}
}
