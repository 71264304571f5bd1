package tomlast

import "strings"

// Table is an unordered mapping from string key to Node. Keys are unique
// within a Table. A Table is "purely implicit" when it has never received
// a direct scalar/array entry — holding at most sub-tables and table
// arrays, as when created as an intermediate step of a deeper dotted
// header. A purely
// implicit Table may be adopted by a later header that names it exactly;
// a non-implicit one may not.
type Table struct {
	items    map[string]Node
	implicit bool
}

// NewTable returns an empty, purely implicit Table.
func NewTable() *Table {
	return &Table{items: make(map[string]Node), implicit: true}
}

func (t *Table) Kind() Kind { return KindTable }

// Implicit reports whether t has never received a direct entry.
func (t *Table) Implicit() bool { return t.implicit }

// Has reports whether key is present directly in t.
func (t *Table) Has(key string) bool {
	_, ok := t.items[key]
	return ok
}

// Child returns the direct child of t named key.
func (t *Table) Child(key string) (Node, bool) {
	n, ok := t.items[key]
	return n, ok
}

// Get returns the direct child of t named key, failing with
// ErrKeyMissing when absent.
func (t *Table) Get(key string) (Node, error) {
	n, ok := t.items[key]
	if !ok {
		return nil, ErrKeyMissing
	}
	return n, nil
}

// GetQualified resolves a dotted path such as "a.b.c" by walking Tables
// only; it fails with ErrKeyMissing when any intermediate component is
// missing or is not itself a Table. It never traverses into a
// TableArray — that resolution is the document parser's concern, not
// this public accessor's.
func (t *Table) GetQualified(path string) (Node, error) {
	parts := strings.Split(path, ".")
	cur := t
	for i, part := range parts {
		n, ok := cur.items[part]
		if !ok {
			return nil, ErrKeyMissing
		}
		if i == len(parts)-1 {
			return n, nil
		}
		sub, ok := n.(*Table)
		if !ok {
			return nil, ErrKeyMissing
		}
		cur = sub
	}
	return nil, ErrKeyMissing
}

// GetTable, GetArray, and GetTableArray are typed convenience accessors
// over Get, returning ok=false both when the key is absent and when it
// names a Node of a different kind.
func (t *Table) GetTable(key string) (*Table, bool) {
	n, ok := t.items[key]
	if !ok {
		return nil, false
	}
	sub, ok := n.(*Table)
	return sub, ok
}

func (t *Table) GetArray(key string) (*Array, bool) {
	n, ok := t.items[key]
	if !ok {
		return nil, false
	}
	arr, ok := n.(*Array)
	return arr, ok
}

func (t *Table) GetTableArray(key string) (*TableArray, bool) {
	n, ok := t.items[key]
	if !ok {
		return nil, false
	}
	ta, ok := n.(*TableArray)
	return ta, ok
}

// GetAsString, GetAsInt, GetAsFloat, GetAsBool, and GetAsDatetime are the
// typed scalar convenience accessors over direct keys; GetQualifiedAs*
// are their dotted-path equivalents.
func (t *Table) GetAsString(key string) (string, bool) { return scalarAs(t.items[key], (*Scalar).AsString) }
func (t *Table) GetAsInt(key string) (int64, bool)     { return scalarAs(t.items[key], (*Scalar).AsInt) }
func (t *Table) GetAsFloat(key string) (float64, bool) { return scalarAs(t.items[key], (*Scalar).AsFloat) }
func (t *Table) GetAsBool(key string) (bool, bool)     { return scalarAs(t.items[key], (*Scalar).AsBool) }
func (t *Table) GetAsDatetime(key string) (Datetime, bool) {
	return scalarAs(t.items[key], (*Scalar).AsDatetime)
}

func (t *Table) GetQualifiedAsString(path string) (string, bool) {
	n, _ := t.GetQualified(path)
	return scalarAs(n, (*Scalar).AsString)
}

func (t *Table) GetQualifiedAsInt(path string) (int64, bool) {
	n, _ := t.GetQualified(path)
	return scalarAs(n, (*Scalar).AsInt)
}

func (t *Table) GetQualifiedAsFloat(path string) (float64, bool) {
	n, _ := t.GetQualified(path)
	return scalarAs(n, (*Scalar).AsFloat)
}

func (t *Table) GetQualifiedAsBool(path string) (bool, bool) {
	n, _ := t.GetQualified(path)
	return scalarAs(n, (*Scalar).AsBool)
}

func (t *Table) GetQualifiedAsDatetime(path string) (Datetime, bool) {
	n, _ := t.GetQualified(path)
	return scalarAs(n, (*Scalar).AsDatetime)
}

func scalarAs[T any](n Node, fn func(*Scalar) (T, bool)) (T, bool) {
	sc, ok := n.(*Scalar)
	if !ok {
		var zero T
		return zero, false
	}
	return fn(sc)
}

// Range calls fn once per direct (key, Node) pair in t, in unspecified
// order, stopping early if fn returns false.
func (t *Table) Range(fn func(key string, n Node) bool) {
	for k, n := range t.items {
		if !fn(k, n) {
			return
		}
	}
}

// Len returns the number of direct entries in t.
func (t *Table) Len() int { return len(t.items) }

// Insert sets key to n, replacing any existing entry of any kind. It is
// the public post-parse mutation API described by the package's
// lifecycle contract: parsing itself never calls Insert, only SetDirect
// and the header-resolution helpers below.
func (t *Table) Insert(key string, n Node) *Table {
	t.items[key] = n
	if n.Kind() == KindScalar || n.Kind() == KindArray {
		t.implicit = false
	}
	return t
}

// InsertString, InsertInt, InsertFloat, InsertBool, and InsertDatetime
// wrap Insert with a freshly built Scalar.
func (t *Table) InsertString(key, v string) *Table        { return t.Insert(key, NewString(v)) }
func (t *Table) InsertInt(key string, v int64) *Table      { return t.Insert(key, NewInt(v)) }
func (t *Table) InsertFloat(key string, v float64) *Table  { return t.Insert(key, NewFloat(v)) }
func (t *Table) InsertBool(key string, v bool) *Table      { return t.Insert(key, NewBool(v)) }
func (t *Table) InsertDatetime(key string, v Datetime) *Table {
	return t.Insert(key, NewDatetimeScalar(v))
}

// SetDirect inserts n under key as a direct, user-written entry — the
// operation behind a `key = value` line, and behind each pair inside an
// inline table. It fails with ErrKeyDuplicate if key is already present,
// and, when n is a scalar or an array, marks t as no longer purely
// implicit.
func (t *Table) SetDirect(key string, n Node) error {
	if _, exists := t.items[key]; exists {
		return ErrKeyDuplicate
	}
	t.items[key] = n
	if n.Kind() == KindScalar || n.Kind() == KindArray {
		t.implicit = false
	}
	return nil
}

// DescendOrCreate returns the Table to continue a dotted header's
// traversal through key: if key is absent, it creates and links an
// implicit Table; if key names a Table, that Table is returned; if key
// names a TableArray, its last element is returned — traversing a dotted
// header through an existing TableArray always resolves to the
// TableArray's last element; any other existing kind is
// ErrKeyConflict.
func (t *Table) DescendOrCreate(key string) (*Table, error) {
	n, ok := t.items[key]
	if !ok {
		next := NewTable()
		t.items[key] = next
		return next, nil
	}
	switch v := n.(type) {
	case *Table:
		return v, nil
	case *TableArray:
		last, ok := v.Last()
		if !ok {
			next := NewTable()
			v.Append(next)
			return next, nil
		}
		return last, nil
	default:
		return nil, ErrKeyConflict
	}
}

// ResolveHeaderTable implements the terminal-component rule of a
// `[a.b.c]` table header: if key is absent, it creates and links a fresh
// implicit Table; if key names a purely implicit Table, that Table is
// adopted unchanged; if key names a non-implicit Table, it is
// ErrTableRedefined; any other existing kind is ErrKeyConflict.
func (t *Table) ResolveHeaderTable(key string) (*Table, error) {
	n, ok := t.items[key]
	if !ok {
		next := NewTable()
		t.items[key] = next
		return next, nil
	}
	sub, ok := n.(*Table)
	if !ok {
		return nil, ErrKeyConflict
	}
	if !sub.implicit {
		return nil, ErrTableRedefined
	}
	return sub, nil
}

// AppendTableArrayElement implements the terminal-component rule of a
// `[[a.b.c]]` table-array header: if key is absent, it creates a new
// TableArray and appends a fresh Table; if key names a TableArray, a
// fresh Table is appended to it; any other existing kind is
// ErrKeyConflict. It returns the newly appended Table, which becomes the
// document parser's new current table.
func (t *Table) AppendTableArrayElement(key string) (*Table, error) {
	n, ok := t.items[key]
	if !ok {
		ta := NewTableArray()
		fresh := NewTable()
		ta.Append(fresh)
		t.items[key] = ta
		return fresh, nil
	}
	ta, ok := n.(*TableArray)
	if !ok {
		return nil, ErrKeyConflict
	}
	fresh := NewTable()
	ta.Append(fresh)
	return fresh, nil
}
