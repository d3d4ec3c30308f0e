package main

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes of definition parsing and
// rendering. Callers match with errors.Is; parse failures are *ParseError
// values wrapping one of these and carrying the offending input.
var (
	errMalformedDatatype      = errors.New("malformed datatype")
	errMalformedAttributeLine = errors.New("malformed attribute line")
	errMalformedDefinition    = errors.New("malformed definition")
	errEmptyDefinition        = errors.New("empty definition")
	errMissingDivider         = errors.New("missing divider")
	errUnsupportedLanguage    = errors.New("unsupported target language")
)

// ParseError reports a parse failure together with the text that caused it.
type ParseError struct {
	kind   error  // one of the sentinel errors above
	Input  string // offending text, verbatim
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s (input: %q)", e.kind, e.Reason, e.Input)
}

func (e *ParseError) Unwrap() error { return e.kind }

func parseErr(kind error, input, format string, args ...any) *ParseError {
	return &ParseError{kind: kind, Input: input, Reason: fmt.Sprintf(format, args...)}
}
