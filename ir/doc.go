// Package ir provides the value-tree representation for structured
// data documents.
//
// All documents (JSON, YAML, TOML) are represented as a tree of
// ir.Node values with six variants: Null, Bool, Number, String,
// Object and Array. Object field order carries no semantic meaning;
// numbers are float64.
//
// The package also defines semantic equality between trees:
// order-insensitive for objects, epsilon-tolerant for numbers.
package ir
