package diff

import "fmt"

// ArrayStrategy selects how arrays are reconciled.
type ArrayStrategy int

const (
	// Positional compares elements index by index. Fast, but a single
	// insertion near the front misreports every later pair as
	// modified.
	Positional ArrayStrategy = iota
	// LCS aligns elements via longest-common-subsequence before
	// comparing. O(n*m) time and space per array pair.
	LCS
)

func (s ArrayStrategy) String() string {
	switch s {
	case Positional:
		return "positional"
	case LCS:
		return "lcs"
	}
	return "<unknown strategy>"
}

func (s ArrayStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ArrayStrategy) UnmarshalText(d []byte) error {
	st, err := ParseArrayStrategy(string(d))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

func ParseArrayStrategy(v string) (ArrayStrategy, error) {
	st, ok := map[string]ArrayStrategy{
		"positional": Positional,
		"p":          Positional,
		"lcs":        LCS,
		"l":          LCS,
	}[v]
	if !ok {
		return 0, fmt.Errorf("unrecognized array strategy %q", v)
	}
	return st, nil
}

// Config controls how Compute compares trees.
type Config struct {
	// IgnoreWhitespace compares strings after collapsing whitespace
	// runs to single spaces and trimming the ends. It applies only to
	// direct string-vs-string comparisons, not to the structural
	// equality of containers.
	IgnoreWhitespace bool

	// TreatNullAsMissing is reserved; the engine does not currently
	// consult it.
	TreatNullAsMissing bool

	ArrayStrategy ArrayStrategy
}
