package diff

import (
	"sort"
	"strings"

	"github.com/maxmalkin/sdiff/ir"
)

// Compute compares old and new and returns every difference between
// them. It never fails: a type mismatch at a path is reported as a
// single Modified change, not an error.
func Compute(old, new *ir.Node, cfg *Config) *Diff {
	if cfg == nil {
		cfg = &Config{}
	}
	d := &differ{cfg: cfg}
	d.nodes(old, new, nil)
	return &Diff{Changes: d.changes, Stats: Tally(d.changes)}
}

type differ struct {
	cfg     *Config
	changes []*Change
}

func (d *differ) emit(path []string, ct ChangeType, old, new *ir.Node) {
	d.changes = append(d.changes, &Change{
		Path: append([]string(nil), path...),
		Type: ct,
		Old:  old.Clone(),
		New:  new.Clone(),
	})
}

func (d *differ) nodes(old, new *ir.Node, path []string) {
	if d.equal(old, new) {
		// Equal containers are walked anyway. Under the current
		// equality relation this finds nothing; it is kept as the
		// hook for a future mode that reports unchanged values.
		switch {
		case old.Type == ir.ObjectType && new.Type == ir.ObjectType:
			d.objects(old, new, path)
		case old.Type == ir.ArrayType && new.Type == ir.ArrayType:
			d.arrays(old, new, path)
		}
		return
	}

	switch {
	case old.Type == ir.ObjectType && new.Type == ir.ObjectType:
		d.objects(old, new, path)
	case old.Type == ir.ArrayType && new.Type == ir.ArrayType:
		d.arrays(old, new, path)
	default:
		d.emit(path, Modified, old, new)
	}
}

// objects emits added members first, then removed, then recurses into
// shared keys. Keys are visited in sorted order so output is
// deterministic.
func (d *differ) objects(old, new *ir.Node, path []string) {
	for _, key := range sortedKeys(new.Fields) {
		if _, ok := old.Fields[key]; ok {
			continue
		}
		d.emit(append(path, key), Added, nil, new.Fields[key])
	}
	for _, key := range sortedKeys(old.Fields) {
		if _, ok := new.Fields[key]; ok {
			continue
		}
		d.emit(append(path, key), Removed, old.Fields[key], nil)
	}
	for _, key := range sortedKeys(old.Fields) {
		nv, ok := new.Fields[key]
		if !ok {
			continue
		}
		d.nodes(old.Fields[key], nv, append(path, key))
	}
}

func (d *differ) arrays(old, new *ir.Node, path []string) {
	switch d.cfg.ArrayStrategy {
	case LCS:
		d.arraysLCS(old.Values, new.Values, path)
	default:
		d.arraysPositional(old.Values, new.Values, path)
	}
}

// equal applies the configured equality: whitespace-normalized for
// direct string pairs when requested, semantic equality otherwise.
func (d *differ) equal(old, new *ir.Node) bool {
	if d.cfg.IgnoreWhitespace &&
		old.Type == ir.StringType && new.Type == ir.StringType {
		return normalizeWhitespace(old.String) == normalizeWhitespace(new.String)
	}
	return ir.SemanticEqual(old, new)
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func sortedKeys(m map[string]*ir.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
