package filter

import "github.com/maxmalkin/sdiff/diff"

// Config holds the compiled pattern lists applied to a diff.
type Config struct {
	// Ignore patterns exclude matching paths unconditionally.
	Ignore []*Pattern
	// Only patterns, when non-empty, restrict the result to matching
	// paths. Ignore wins over Only.
	Only []*Pattern
}

// NewConfig compiles ignore and only pattern strings.
func NewConfig(ignore, only []string) *Config {
	cfg := &Config{}
	for _, p := range ignore {
		cfg.Ignore = append(cfg.Ignore, ParsePattern(p))
	}
	for _, p := range only {
		cfg.Only = append(cfg.Only, ParsePattern(p))
	}
	return cfg
}

func (c *Config) HasPatterns() bool {
	return len(c.Ignore) != 0 || len(c.Only) != 0
}

// ShouldInclude decides whether a change at path survives filtering.
func (c *Config) ShouldInclude(path []string) bool {
	for _, p := range c.Ignore {
		if p.Matches(path) {
			return false
		}
	}
	if len(c.Only) != 0 {
		for _, p := range c.Only {
			if p.Matches(path) {
				return true
			}
		}
		return false
	}
	return true
}

// Apply returns a new diff holding only the changes whose paths
// survive the configured patterns, with stats recomputed. The input
// diff is not modified. With no patterns configured the result is an
// equivalent copy.
func Apply(d *diff.Diff, cfg *Config) *diff.Diff {
	if cfg == nil || !cfg.HasPatterns() {
		changes := append([]*diff.Change(nil), d.Changes...)
		return &diff.Diff{Changes: changes, Stats: d.Stats}
	}
	var kept []*diff.Change
	for _, c := range d.Changes {
		if cfg.ShouldInclude(c.Path) {
			kept = append(kept, c)
		}
	}
	return &diff.Diff{Changes: kept, Stats: diff.Tally(kept)}
}
