package domain

import "fmt"

// ParseError reports a malformed or incomplete problem source.
type ParseError struct {
	Source string
	Line   int
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %s", e.Source, e.Line, msg)
	}
	return fmt.Sprintf("parse %s: %s", e.Source, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IndexOutOfRangeError reports a route index outside [0, Max].
// Token holds the raw text when the value did not fit in an int.
type IndexOutOfRangeError struct {
	Source string
	Line   int
	Index  int
	Token  string
	Max    int
}

func (e *IndexOutOfRangeError) Error() string {
	idx := fmt.Sprint(e.Index)
	if e.Token != "" {
		idx = e.Token
	}

	where := ""
	if e.Source != "" {
		where = e.Source + ": "
	}
	if e.Line > 0 {
		where += fmt.Sprintf("line %d: ", e.Line)
	}

	if e.Max < 0 {
		return fmt.Sprintf("%sindex %s out of range", where, idx)
	}
	return fmt.Sprintf("%sindex %s out of range [0, %d]", where, idx, e.Max)
}

// UsageError reports a wrong command invocation.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return "usage: " + e.Msg }
