// Package filter narrows a diff to a subset of paths using dot-
// separated glob patterns.
//
// A pattern segment is a literal, "*" (exactly one path segment) or
// "**" (zero or more segments). Config holds ignore patterns, which
// always win, and only patterns, which restrict the result when
// present.
package filter
