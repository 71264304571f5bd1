package tomlast

// TableArray is an ordered sequence of Tables, created by repeated
// `[[a.b]]` headers sharing the same path.
type TableArray struct {
	elems []*Table
}

// NewTableArray returns an empty TableArray.
func NewTableArray() *TableArray { return &TableArray{} }

func (a *TableArray) Kind() Kind { return KindTableArray }

// Len returns the number of Tables in a.
func (a *TableArray) Len() int { return len(a.elems) }

// At returns the Table at index i, or (nil, false) if i is out of range.
func (a *TableArray) At(i int) (*Table, bool) {
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}
	return a.elems[i], true
}

// Last returns the most recently appended Table, or (nil, false) if a is
// empty.
func (a *TableArray) Last() (*Table, bool) {
	if len(a.elems) == 0 {
		return nil, false
	}
	return a.elems[len(a.elems)-1], true
}

// Append adds t to the end of a.
func (a *TableArray) Append(t *Table) { a.elems = append(a.elems, t) }
