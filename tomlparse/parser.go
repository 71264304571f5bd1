// Package tomlparse drives a bufio.Scanner line by line over a document,
// dispatching each line to a table header or a key/value assignment and
// tracking the line number for diagnostics. Value decoding itself — once
// a value's physical lines have been joined into one string — is left to
// tomlast; this package owns only line accounting and tree navigation.
package tomlparse

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/kvconf/tomlv04/internal/tomllex"
	"github.com/kvconf/tomlv04/tomlast"
	"github.com/kvconf/tomlv04/tomlerr"
)

// Parse reads a complete TOML v0.4.0 document from r and returns its
// root Table. Per the propagation policy, the first error encountered
// aborts the whole parse and any partially constructed tree is
// dropped — the returned Table is nil whenever err is non-nil.
func Parse(r io.Reader) (*tomlast.Table, error) {
	p := newParser(r)
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.root, nil
}

type parser struct {
	sc     *bufio.Scanner
	root   *tomlast.Table
	cur    *tomlast.Table
	lineNo int
}

func newParser(r io.Reader) *parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	root := tomlast.NewTable()
	return &parser{sc: sc, root: root, cur: root}
}

func (p *parser) run() error {
	for {
		line, ok := p.nextLine()
		if !ok {
			break
		}
		trimmed := tomllex.TrimSpaceTab(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") {
			if err := p.parseHeader(trimmed); err != nil {
				return err
			}
			continue
		}
		if err := p.parseKeyValue(trimmed); err != nil {
			return err
		}
	}
	if err := p.sc.Err(); err != nil {
		return err
	}
	return nil
}

// nextLine pulls the next physical line and advances lineNo. It is the
// only place that touches the scanner, so materializeValue can call it
// to pull continuation lines without duplicating bookkeeping.
func (p *parser) nextLine() (string, bool) {
	if !p.sc.Scan() {
		return "", false
	}
	p.lineNo++
	return p.sc.Text(), true
}

func (p *parser) errf(code tomlerr.Code, msg string) error {
	return tomlerr.New(p.lineNo, code, msg)
}

// parseHeader handles a `[a.b.c]` or `[[a.b.c]]` line. The current-table
// pointer is reset to the root before each header's traversal — a
// header's path is always absolute, never relative to the previously
// open table.
func (p *parser) parseHeader(line string) error {
	code := tomllex.TrimTrailingSpaceTab(tomllex.StripComment(line))
	isArray := strings.HasPrefix(code, "[[")

	var body string
	if isArray {
		if !strings.HasSuffix(code, "]]") {
			return p.errf(tomlerr.TrailingGarbage, "unterminated table-array header")
		}
		body = code[2 : len(code)-2]
	} else {
		if !strings.HasSuffix(code, "]") {
			return p.errf(tomlerr.TrailingGarbage, "unterminated table header")
		}
		body = code[1 : len(code)-1]
	}
	body = tomllex.TrimSpaceTab(body)
	if body == "" {
		return p.errf(tomlerr.EmptyTableName, "table header names no key")
	}

	parts, err := tomllex.SplitDotted(body)
	if err != nil {
		if errors.Is(err, tomllex.ErrEmptyKey) {
			return p.errf(tomlerr.EmptyTableName, "dotted header has an empty component")
		}
		return p.errf(tomlerr.TrailingGarbage, err.Error())
	}

	t := p.root
	for _, part := range parts[:len(parts)-1] {
		next, err := t.DescendOrCreate(part)
		if err != nil {
			return p.mapTableErr(err, part)
		}
		t = next
	}
	last := parts[len(parts)-1]

	if isArray {
		elem, err := t.AppendTableArrayElement(last)
		if err != nil {
			return p.mapTableErr(err, last)
		}
		p.cur = elem
		return nil
	}
	elem, err := t.ResolveHeaderTable(last)
	if err != nil {
		return p.mapTableErr(err, last)
	}
	p.cur = elem
	return nil
}

func (p *parser) mapTableErr(err error, key string) error {
	switch {
	case errors.Is(err, tomlast.ErrTableRedefined):
		return p.errf(tomlerr.TableRedefined, "table "+key+" already has direct entries")
	case errors.Is(err, tomlast.ErrKeyConflict):
		return p.errf(tomlerr.KeyConflict, "key "+key+" is not a table")
	default:
		return p.errf(tomlerr.KeyConflict, err.Error())
	}
}

// parseKeyValue handles a `key = value` line. Unlike a table header's
// dotted path, the key here is a single bare or quoted key component —
// this target version of the format does not extend assignment keys
// with dots the way table headers are.
func (p *parser) parseKeyValue(line string) error {
	idx := tomllex.FindUnquotedEqual(line)
	if idx < 0 {
		return p.errf(tomlerr.TrailingGarbage, "missing '=' in key/value line")
	}
	rawKey := line[:idx]
	rawVal := line[idx+1:]

	key, err := tomllex.ScanKey(rawKey)
	if err != nil {
		return p.errf(tomlerr.TrailingGarbage, "malformed key")
	}
	if p.cur.Has(key) {
		return p.errf(tomlerr.KeyDuplicate, "key "+key+" already defined")
	}

	materialized, err := p.materializeValue(tomllex.TrimLeadingSpaceTab(rawVal))
	if err != nil {
		return err
	}

	code := tomllex.StripComment(materialized)
	valueText, rest := tomlast.ValueExtent(tomllex.TrimLeadingSpaceTab(code))
	if err := tomllex.EOLOrComment(rest); err != nil {
		return p.errf(tomlerr.TrailingGarbage, "unexpected text after value")
	}

	node, err := tomlast.DecodeValue(valueText)
	if err != nil {
		return p.mapValueErr(err)
	}
	if err := p.cur.SetDirect(key, node); err != nil {
		return p.errf(tomlerr.KeyDuplicate, "key "+key+" already defined")
	}
	return nil
}

// materializeValue joins physical lines, starting from first (the text
// right after '='), until the value it opens — a triple-quoted string,
// an array, or an inline table — is syntactically closed. A value that
// doesn't open one of those closes on its own line and needs no pulling.
func (p *parser) materializeValue(first string) (string, error) {
	buf := first
	for tomlast.IsOpenValue(buf) {
		line, ok := p.nextLine()
		if !ok {
			return "", p.unterminatedErr(buf)
		}
		buf += "\n" + line
	}
	return buf, nil
}

func (p *parser) unterminatedErr(buf string) error {
	trimmed := tomllex.TrimSpaceTab(tomllex.StripComment(buf))
	switch {
	case strings.HasPrefix(trimmed, `"""`), strings.HasPrefix(trimmed, `'''`):
		return p.errf(tomlerr.StringUnterminated, "unterminated multi-line string")
	case strings.HasPrefix(trimmed, "{"):
		return p.errf(tomlerr.InlineTableUnterminated, "unterminated inline table")
	default:
		return p.errf(tomlerr.ArrayUnterminated, "unterminated array")
	}
}

func (p *parser) mapValueErr(err error) error {
	switch {
	case errors.Is(err, tomlast.ErrMalformedNumber):
		return p.errf(tomlerr.MalformedNumber, err.Error())
	case errors.Is(err, tomlast.ErrMalformedBool):
		return p.errf(tomlerr.MalformedBool, err.Error())
	case errors.Is(err, tomlast.ErrMalformedDate):
		return p.errf(tomlerr.MalformedDate, err.Error())
	case errors.Is(err, tomlast.ErrBadEscape):
		return p.errf(tomlerr.BadEscape, err.Error())
	case errors.Is(err, tomlast.ErrStringUnterminated):
		return p.errf(tomlerr.StringUnterminated, err.Error())
	case errors.Is(err, tomlast.ErrArrayUnterminated):
		return p.errf(tomlerr.ArrayUnterminated, err.Error())
	case errors.Is(err, tomlast.ErrInlineTableUnterminated):
		return p.errf(tomlerr.InlineTableUnterminated, err.Error())
	case errors.Is(err, tomlast.ErrArrayHeterogeneous):
		return p.errf(tomlerr.ArrayHeterogeneous, err.Error())
	case errors.Is(err, tomlast.ErrArrayElementKind):
		return p.errf(tomlerr.ArrayHeterogeneous, err.Error())
	case errors.Is(err, tomlast.ErrKeyDuplicate):
		return p.errf(tomlerr.KeyDuplicate, err.Error())
	case errors.Is(err, tomlast.ErrEmptyValue):
		return p.errf(tomlerr.UnexpectedEnd, "value missing")
	default:
		return p.errf(tomlerr.TrailingGarbage, err.Error())
	}
}
