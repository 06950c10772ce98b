package diff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/maxmalkin/sdiff/ir"
)

func changeSummary(d *Diff) []string {
	var out []string
	for _, c := range d.Changes {
		s := c.Type.String() + " "
		for _, seg := range c.Path {
			s += seg
		}
		out = append(out, s)
	}
	return out
}

func TestPositionalEqualArrays(t *testing.T) {
	d := Compute(nums(1, 2, 3), nums(1, 2, 3), &Config{})
	if !d.IsEmpty() {
		t.Errorf("equal arrays produced %v", changeSummary(d))
	}
}

func TestPositionalModifiedElement(t *testing.T) {
	d := Compute(nums(1, 2, 3), nums(1, 5, 3), &Config{})
	if d.Stats.Modified != 1 || len(d.Changes) != 1 {
		t.Fatalf("stats = %+v", d.Stats)
	}
	if diff := cmp.Diff([]string{"[1]"}, d.Changes[0].Path); diff != "" {
		t.Errorf("path (-want +got):\n%s", diff)
	}
}

func TestPositionalTails(t *testing.T) {
	d := Compute(nums(1, 2), nums(1, 2, 3), &Config{})
	if d.Stats.Added != 1 || len(d.Changes) != 1 {
		t.Fatalf("added tail: stats = %+v", d.Stats)
	}
	if d.Changes[0].Path[0] != "[2]" {
		t.Errorf("added at %v, want [2]", d.Changes[0].Path)
	}

	d = Compute(nums(1, 2, 3), nums(1, 2), &Config{})
	if d.Stats.Removed != 1 || d.Changes[0].Path[0] != "[2]" {
		t.Errorf("removed tail: %v", changeSummary(d))
	}
}

func TestPositionalMisalignsOnInsert(t *testing.T) {
	// An insertion near the front shifts every later pair.
	d := Compute(nums(1, 2, 3), nums(1, 4, 2, 3), &Config{ArrayStrategy: Positional})
	if d.Stats.Modified != 2 || d.Stats.Added != 1 {
		t.Errorf("positional stats = %+v, want 2 modified + 1 added", d.Stats)
	}
}

func TestLCSInsertion(t *testing.T) {
	d := Compute(nums(1, 2, 3), nums(1, 4, 2, 3), &Config{ArrayStrategy: LCS})
	if d.Stats.Added != 1 || d.Stats.Removed != 0 || d.Stats.Modified != 0 {
		t.Fatalf("lcs stats = %+v, want exactly 1 added", d.Stats)
	}
	c := d.Changes[0]
	if c.Path[0] != "[1]" || c.New.Float64 != 4 {
		t.Errorf("added change = %v %s", c.Path, c.New.Preview(80))
	}
}

func TestLCSDeletion(t *testing.T) {
	d := Compute(nums(1, 2, 3, 4), nums(1, 3, 4), &Config{ArrayStrategy: LCS})
	if d.Stats.Removed != 1 || d.Stats.Added != 0 || d.Stats.Modified != 0 {
		t.Fatalf("lcs stats = %+v, want exactly 1 removed", d.Stats)
	}
	c := d.Changes[0]
	if c.Old.Float64 != 2 {
		t.Errorf("removed value = %s, want 2", c.Old.Preview(80))
	}
	// deletions are addressed in new-array coordinates
	if c.Path[0] != "[1]" {
		t.Errorf("removed at %v, want [1]", c.Path)
	}
}

func TestLCSReorderTieBreak(t *testing.T) {
	// The common subsequence of [1,2,3] and [3,1,2] is [1,2]; the
	// moved element must surface as one insert plus one delete, never
	// as a modification.
	d := Compute(nums(1, 2, 3), nums(3, 1, 2), &Config{ArrayStrategy: LCS})
	if d.Stats.Added != 1 || d.Stats.Removed != 1 || d.Stats.Modified != 0 {
		t.Fatalf("lcs stats = %+v, want 1 added + 1 removed", d.Stats)
	}
	want := []string{"added [0]", "removed [3]"}
	if diff := cmp.Diff(want, changeSummary(d)); diff != "" {
		t.Errorf("script (-want +got):\n%s", diff)
	}
}

func TestLCSRecursesIntoKeptElements(t *testing.T) {
	old := ir.FromSlice([]*ir.Node{
		obj(map[string]*ir.Node{"id": ir.FromFloat(1), "v": ir.FromString("a")}),
		obj(map[string]*ir.Node{"id": ir.FromFloat(2), "v": ir.FromString("b")}),
	})
	new := ir.FromSlice([]*ir.Node{
		obj(map[string]*ir.Node{"id": ir.FromFloat(1), "v": ir.FromString("a")}),
		obj(map[string]*ir.Node{"id": ir.FromFloat(2), "v": ir.FromString("c")}),
	})
	// Element 1 differs in a single field, so it cannot match; LCS
	// falls back to reporting it whole.
	d := Compute(old, new, &Config{ArrayStrategy: LCS})
	if d.Stats.Added != 1 || d.Stats.Removed != 1 {
		t.Errorf("stats = %+v, want 1 added + 1 removed (no partial credit)", d.Stats)
	}
}

func TestLCSEmptyArrays(t *testing.T) {
	cfg := &Config{ArrayStrategy: LCS}
	if d := Compute(nums(), nums(), cfg); !d.IsEmpty() {
		t.Error("two empty arrays must diff empty")
	}
	d := Compute(nums(), nums(1, 2), cfg)
	if d.Stats.Added != 2 {
		t.Errorf("empty -> [1,2]: stats = %+v", d.Stats)
	}
	d = Compute(nums(1, 2), nums(), cfg)
	if d.Stats.Removed != 2 {
		t.Errorf("[1,2] -> empty: stats = %+v", d.Stats)
	}
	// both deletions land at the position they would occupy in new
	for _, c := range d.Changes {
		if c.Path[0] != "[0]" {
			t.Errorf("deletion addressed at %v, want [0]", c.Path)
		}
	}
}

func TestLCSEqualArraysNoChanges(t *testing.T) {
	d := Compute(nums(1, 2, 3), nums(1, 2, 3), &Config{ArrayStrategy: LCS})
	if !d.IsEmpty() {
		t.Errorf("equal arrays produced %v", changeSummary(d))
	}
}
