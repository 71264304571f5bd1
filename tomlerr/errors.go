// Package tomlerr holds the single error kind a parse, a file open, or a
// merge ever fails with: a message tagged with the 1-based line number
// being read when the failure was detected, or no line at all for a
// failure that isn't tied to one (an open failure, a merge conflict).
package tomlerr

import "fmt"

// Code names one of the fixed parse-error messages.
type Code string

const (
	UnexpectedEnd           Code = "unexpected-end"
	EmptyTableName          Code = "empty-table-name"
	TableRedefined          Code = "table-redefined"
	KeyConflict             Code = "key-conflict"
	KeyDuplicate            Code = "key-duplicate"
	MalformedNumber         Code = "malformed-number"
	MalformedDate           Code = "malformed-date"
	MalformedBool           Code = "malformed-bool"
	BadEscape               Code = "bad-escape"
	StringUnterminated      Code = "string-unterminated"
	ArrayUnterminated       Code = "array-unterminated"
	ArrayHeterogeneous      Code = "array-heterogeneous"
	InlineTableUnterminated Code = "inline-table-unterminated"
	TrailingGarbage         Code = "trailing-garbage"
	MergeConflict           Code = "merge-conflict"
	IOOpen                  Code = "io-open"
	IORead                  Code = "io-read"
)

// ParseError is the one error kind a parse can fail with: a message
// tagged with the line being read when the failure was detected.
type ParseError struct {
	Code Code
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line <= 0 {
		if e.Msg == "" {
			return string(e.Code)
		}
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	if e.Msg == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Code)
	}
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Msg)
}

// New builds a ParseError, propagation stops at the first one per the
// parser's no-local-recovery policy — there is never more than one in
// flight.
func New(line int, code Code, msg string) *ParseError {
	return &ParseError{Code: code, Line: line, Msg: msg}
}
