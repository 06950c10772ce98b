// Package render formats a diff for people and machines.
//
// Three styles are supported: colored terminal output, plain text and
// a JSON document. Rendering is configured through functional options
// in the same shape as package parse.
package render
