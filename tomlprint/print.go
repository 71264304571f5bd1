// Package tomlprint renders a tomlast.Table back into TOML text: a
// depth-first walk that emits each table's direct entries before
// descending into its sub-tables and table arrays, the inverse of
// tomlparse's construction order.
package tomlprint

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/kvconf/tomlv04/tomlast"
)

// String renders root as TOML text.
func String(root *tomlast.Table) string {
	var b strings.Builder
	_ = Fprint(&b, root)
	return b.String()
}

// Fprint writes root to w as TOML text: direct scalar/array entries
// first, indented one tab per depth, then `[a.b]` headers for
// sub-tables, then `[[a.b]]` headers once per table-array element —
// each header's path is the full dotted path from the root, not
// relative to its parent.
func Fprint(w io.Writer, root *tomlast.Table) error {
	return printTable(w, root, nil, 0)
}

func printTable(w io.Writer, t *tomlast.Table, path []string, depth int) error {
	keys := sortedKeys(t)
	indent := strings.Repeat("\t", depth)

	for _, k := range keys {
		n, _ := t.Child(k)
		switch n.Kind() {
		case tomlast.KindScalar, tomlast.KindArray:
			if _, err := fmt.Fprintf(w, "%s%s = %s\n", indent, printKey(k), renderValue(n)); err != nil {
				return err
			}
		}
	}

	for _, k := range keys {
		n, _ := t.Child(k)
		sub, ok := n.(*tomlast.Table)
		if !ok {
			continue
		}
		childPath := appendPath(path, k)
		if _, err := fmt.Fprintf(w, "[%s]\n", dottedPath(childPath)); err != nil {
			return err
		}
		if err := printTable(w, sub, childPath, depth+1); err != nil {
			return err
		}
	}

	for _, k := range keys {
		n, _ := t.Child(k)
		ta, ok := n.(*tomlast.TableArray)
		if !ok {
			continue
		}
		childPath := appendPath(path, k)
		for i := 0; i < ta.Len(); i++ {
			elem, _ := ta.At(i)
			if _, err := fmt.Fprintf(w, "[[%s]]\n", dottedPath(childPath)); err != nil {
				return err
			}
			if err := printTable(w, elem, childPath, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys(t *tomlast.Table) []string {
	keys := make([]string, 0, t.Len())
	t.Range(func(k string, _ tomlast.Node) bool {
		keys = append(keys, k)
		return true
	})
	sort.Strings(keys)
	return keys
}

func appendPath(path []string, k string) []string {
	next := make([]string, len(path)+1)
	copy(next, path)
	next[len(path)] = k
	return next
}

func dottedPath(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = printKey(p)
	}
	return strings.Join(parts, ".")
}

// printKey quotes a key that isn't a legal bare key — containing
// whitespace, '#', '[', ']', or '.', or empty.
func printKey(k string) string {
	if k == "" {
		return `""`
	}
	for i := 0; i < len(k); i++ {
		switch k[i] {
		case ' ', '\t', '#', '[', ']', '.':
			return quoteBasic(k)
		}
	}
	return k
}

func renderValue(n tomlast.Node) string {
	switch v := n.(type) {
	case *tomlast.Scalar:
		return renderScalar(v)
	case *tomlast.Array:
		return renderArray(v)
	default:
		return ""
	}
}

func renderScalar(s *tomlast.Scalar) string {
	switch s.ScalarKind() {
	case tomlast.ScalarString:
		v, _ := s.AsString()
		return quoteBasic(v)
	case tomlast.ScalarInt:
		v, _ := s.AsInt()
		return strconv.FormatInt(v, 10)
	case tomlast.ScalarFloat:
		v, _ := s.AsFloat()
		return formatFloat(v)
	case tomlast.ScalarBool:
		v, _ := s.AsBool()
		if v {
			return "true"
		}
		return "false"
	case tomlast.ScalarDatetime:
		v, _ := s.AsDatetime()
		return v.String()
	default:
		return ""
	}
}

// formatFloat uses the shortest decimal representation that round-trips
// through strconv.ParseFloat, then ensures the result still looks like
// a float (has a '.' or an exponent) even for whole-number values.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func renderArray(a *tomlast.Array) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		n, _ := a.At(i)
		b.WriteString(renderValue(n))
	}
	b.WriteByte(']')
	return b.String()
}

// quoteBasic renders v as a basic (double-quoted, single-line) string,
// escaping '\\', '"', '\n', '\t', and '\r' — the printer never emits literal or
// multi-line strings, even when decoding one, per the round-trip
// invariant's documented exception.
func quoteBasic(v string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(v[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}
