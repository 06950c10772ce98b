// Package format enumerates the document formats sdiff understands
// and maps between format names, file extensions and Format values.
package format
