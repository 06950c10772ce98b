package filter

import "strings"

type segmentKind int

const (
	literalSegment segmentKind = iota
	singleWildcard
	doubleWildcard
)

type patternSegment struct {
	kind    segmentKind
	literal string
}

// Pattern is a compiled path glob.
type Pattern struct {
	source   string
	segments []patternSegment
}

// ParsePattern compiles a dot-separated glob. Every input compiles;
// there are no invalid patterns.
func ParsePattern(pattern string) *Pattern {
	parts := strings.Split(pattern, ".")
	segs := make([]patternSegment, len(parts))
	for i, p := range parts {
		switch p {
		case "**":
			segs[i] = patternSegment{kind: doubleWildcard}
		case "*":
			segs[i] = patternSegment{kind: singleWildcard}
		default:
			segs[i] = patternSegment{kind: literalSegment, literal: p}
		}
	}
	return &Pattern{source: pattern, segments: segs}
}

func (p *Pattern) String() string {
	return p.source
}

// Matches reports whether the pattern covers the whole path.
func (p *Pattern) Matches(path []string) bool {
	return matchSegments(p.segments, path)
}

// matchSegments recurses on (remaining pattern, remaining path). The
// double wildcard tries consuming zero segments, then one more. The
// two-way recursion is exponential in pathological inputs; document
// diff paths are short enough that memoization is not worth carrying.
func matchSegments(pattern []patternSegment, path []string) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}
	if len(path) == 0 {
		for _, seg := range pattern {
			if seg.kind != doubleWildcard {
				return false
			}
		}
		return true
	}
	switch pattern[0].kind {
	case literalSegment:
		return pattern[0].literal == path[0] && matchSegments(pattern[1:], path[1:])
	case singleWildcard:
		return matchSegments(pattern[1:], path[1:])
	default:
		return matchSegments(pattern[1:], path) || matchSegments(pattern, path[1:])
	}
}
