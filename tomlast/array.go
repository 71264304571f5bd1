package tomlast

// Array is an ordered sequence of Nodes. It has exactly one of two legal
// shapes: a value array, whose elements are all Scalars of one concrete
// ScalarKind, or a nested array, whose elements are themselves Arrays
// (possibly of differing inner shapes). Tables may never be elements of
// an Array; use a TableArray for that.
type Array struct {
	elems      []Node
	elemKind   Kind // KindScalar or KindArray once the first element is known
	scalarKind ScalarKind
	typed      bool
}

// NewArray returns an empty Array ready to accept elements via Append.
func NewArray() *Array { return &Array{} }

func (a *Array) Kind() Kind { return KindArray }

// Len returns the number of elements in a.
func (a *Array) Len() int { return len(a.elems) }

// At returns the element at index i, or (nil, false) if i is out of
// range.
func (a *Array) At(i int) (Node, bool) {
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}
	return a.elems[i], true
}

// Append adds n to the array, enforcing the homogeneity invariant: the
// first element fixes the array's shape (scalar kind, or "array of
// arrays"), and every later element must match it. Tables and
// TableArrays are never valid elements.
func (a *Array) Append(n Node) error {
	switch n.Kind() {
	case KindTable, KindTableArray:
		return ErrArrayElementKind
	case KindArray:
		if !a.typed {
			a.typed = true
			a.elemKind = KindArray
		} else if a.elemKind != KindArray {
			return ErrArrayHeterogeneous
		}
	case KindScalar:
		sc := n.(*Scalar)
		if !a.typed {
			a.typed = true
			a.elemKind = KindScalar
			a.scalarKind = sc.kind
		} else if a.elemKind != KindScalar || sc.kind != a.scalarKind {
			return ErrArrayHeterogeneous
		}
	}
	a.elems = append(a.elems, n)
	return nil
}

// ElementKind reports the Kind shared by every element (KindScalar or
// KindArray), and false if the array is still empty.
func (a *Array) ElementKind() (Kind, bool) { return a.elemKind, a.typed }

// ScalarElementKind reports the ScalarKind shared by every element when
// ElementKind is KindScalar, and false otherwise.
func (a *Array) ScalarElementKind() (ScalarKind, bool) {
	if !a.typed || a.elemKind != KindScalar {
		return 0, false
	}
	return a.scalarKind, true
}

// Strings, Ints, Floats, Bools, and Datetimes return one optional per
// element: non-nil where the element is a Scalar of the matching kind,
// nil elsewhere (including for non-scalar elements).
func (a *Array) Strings() []*string {
	out := make([]*string, len(a.elems))
	for i, e := range a.elems {
		if sc, ok := e.(*Scalar); ok {
			if v, ok := sc.AsString(); ok {
				out[i] = &v
			}
		}
	}
	return out
}

func (a *Array) Ints() []*int64 {
	out := make([]*int64, len(a.elems))
	for i, e := range a.elems {
		if sc, ok := e.(*Scalar); ok {
			if v, ok := sc.AsInt(); ok {
				out[i] = &v
			}
		}
	}
	return out
}

func (a *Array) Floats() []*float64 {
	out := make([]*float64, len(a.elems))
	for i, e := range a.elems {
		if sc, ok := e.(*Scalar); ok {
			if v, ok := sc.AsFloat(); ok {
				out[i] = &v
			}
		}
	}
	return out
}

func (a *Array) Bools() []*bool {
	out := make([]*bool, len(a.elems))
	for i, e := range a.elems {
		if sc, ok := e.(*Scalar); ok {
			if v, ok := sc.AsBool(); ok {
				out[i] = &v
			}
		}
	}
	return out
}

func (a *Array) Datetimes() []*Datetime {
	out := make([]*Datetime, len(a.elems))
	for i, e := range a.elems {
		if sc, ok := e.(*Scalar); ok {
			if v, ok := sc.AsDatetime(); ok {
				out[i] = &v
			}
		}
	}
	return out
}

// NestedArrays returns one optional *Array per element, non-nil where the
// element is itself an Array.
func (a *Array) NestedArrays() []*Array {
	out := make([]*Array, len(a.elems))
	for i, e := range a.elems {
		if sub, ok := e.(*Array); ok {
			out[i] = sub
		}
	}
	return out
}
