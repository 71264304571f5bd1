// Package tomlast defines the in-memory tree produced by parsing a TOML
// document: scalars, arrays, tables, and arrays of tables, plus the
// invariants (key uniqueness, array homogeneity, table redefinition rules)
// that hold the tree together.
package tomlast

import "errors"

// Kind identifies which of the four Node variants a value is.
type Kind int

const (
	KindScalar Kind = iota
	KindArray
	KindTable
	KindTableArray
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	case KindTableArray:
		return "table-array"
	default:
		return "unknown"
	}
}

// Node is a value in a parsed TOML document: a Scalar, an Array, a Table,
// or a TableArray. Parent nodes exclusively own their children; a Node
// returned by a lookup is a non-owning view into the tree that produced
// it.
type Node interface {
	Kind() Kind
}

// Sentinel errors describing structural invariant violations. tomlparse
// attaches a line number and a spec error code to these when it
// encounters them; callers using the tree directly after parsing see
// these bare.
var (
	ErrKeyMissing         = errors.New("tomlast: key missing")
	ErrKeyConflict        = errors.New("tomlast: key already defined and is not a table")
	ErrTableRedefined     = errors.New("tomlast: table already defined")
	ErrKeyDuplicate       = errors.New("tomlast: duplicate key")
	ErrArrayHeterogeneous = errors.New("tomlast: array elements must share one scalar kind")
	ErrArrayElementKind   = errors.New("tomlast: arrays cannot contain tables")
)
