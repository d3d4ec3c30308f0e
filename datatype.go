package main

import (
	"encoding/json"
	"strconv"
	"strings"
)

// djTypes are the type keywords a definition may use. Matching is
// case-sensitive; anything else fails as a malformed datatype.
var djTypes = map[string]bool{
	"tinyint": true, "smallint": true, "mediumint": true, "int": true,
	"enum": true, "date": true, "time": true, "datetime": true,
	"timestamp": true, "char": true, "varchar": true, "float": true,
	"double": true, "decimal": true, "blob": true, "tinyblob": true,
	"mediumblob": true, "longblob": true, "attach": true, "filepath": true,
}

// storeKinds are the types that may reference an external store ("blob@raw").
var storeKinds = map[string]bool{
	"blob": true, "attach": true, "filepath": true,
}

// Datatype is a parsed type expression such as varchar(20), int unsigned,
// enum('a', 'b') or filepath@external.
type Datatype struct {
	Name     string    `json:"datatype" yaml:"datatype"`
	Args     *TypeArgs `json:"args" yaml:"args"`
	Unsigned bool      `json:"unsigned" yaml:"unsigned"`
}

func (d Datatype) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	if d.Args != nil {
		if store, ok := d.Args.scalarString(); ok && storeKinds[d.Name] {
			b.WriteByte('@')
			b.WriteString(store)
		} else {
			b.WriteByte('(')
			b.WriteString(d.Args.String())
			b.WriteByte(')')
		}
	}
	if d.Unsigned {
		b.WriteString(" unsigned")
	}
	return b.String()
}

// TypeArgs holds a datatype's arguments. All-numeric argument lists are
// canonicalized to integers; anything else keeps the raw tokens. Single
// arguments collapse to scalars.
type TypeArgs struct {
	ints []int
	strs []string
	list bool // serialize and render as a list even when length is 1
}

func intArg(n int) *TypeArgs             { return &TypeArgs{ints: []int{n}} }
func intListArgs(ns ...int) *TypeArgs    { return &TypeArgs{ints: ns, list: true} }
func strArg(s string) *TypeArgs          { return &TypeArgs{strs: []string{s}} }
func strListArgs(ss ...string) *TypeArgs { return &TypeArgs{strs: ss, list: true} }

// String renders the argument list as it appears between parentheses.
// Integer arguments are joined without spaces; raw tokens keep whatever
// spacing they were parsed with.
func (a *TypeArgs) String() string {
	if a.ints != nil {
		parts := make([]string, len(a.ints))
		for i, n := range a.ints {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	}
	return strings.Join(a.strs, ",")
}

// scalarString returns the argument value when it is a single string token.
func (a *TypeArgs) scalarString() (string, bool) {
	if a.strs != nil && !a.list {
		return a.strs[0], true
	}
	return "", false
}

// value returns the scalar-or-list form shared by the JSON and YAML
// serializations: int, []int, string or []string.
func (a *TypeArgs) value() any {
	switch {
	case a.ints != nil && !a.list:
		return a.ints[0]
	case a.ints != nil:
		return a.ints
	case !a.list:
		return a.strs[0]
	default:
		return a.strs
	}
}

func (a *TypeArgs) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value())
}

func (a *TypeArgs) MarshalYAML() (any, error) {
	return a.value(), nil
}

// argsFromTokens coerces raw argument tokens into TypeArgs. A single token
// is trimmed and collapses to a scalar; multi-token lists where every token
// parses as an integer become integer lists, all others keep their tokens
// verbatim so quoted enum values round-trip byte for byte.
func argsFromTokens(tokens []string) *TypeArgs {
	if len(tokens) == 1 {
		tok := strings.TrimSpace(tokens[0])
		if n, err := strconv.Atoi(tok); err == nil {
			return intArg(n)
		}
		return strArg(tok)
	}

	ints := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return strListArgs(tokens...)
		}
		ints[i] = n
	}
	return intListArgs(ints...)
}

// splitTypeArgs splits an argument list on commas, ignoring commas inside
// single- or double-quoted runs. A doubled quote inside a quoted run stays
// part of it. Tokens keep their surrounding whitespace.
func splitTypeArgs(s string) []string {
	var tokens []string
	var b strings.Builder
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			b.WriteByte(c)
			if c == quote {
				if i+1 < len(s) && s[i+1] == quote {
					b.WriteByte(quote)
					i++
					continue
				}
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
			b.WriteByte(c)
		case c == ',':
			tokens = append(tokens, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	tokens = append(tokens, b.String())
	return tokens
}

// parseDatatype parses a type expression. The form is a type keyword,
// optionally followed by a parenthesized argument list or an @store
// reference, optionally followed by a whitespace-separated unsigned token.
func parseDatatype(raw string) (Datatype, error) {
	var d Datatype
	s := strings.TrimSpace(raw)
	if s == "" {
		return Datatype{}, parseErr(errMalformedDatatype, raw, "empty datatype")
	}

	if strings.HasSuffix(s, "unsigned") {
		rest := strings.TrimSuffix(s, "unsigned")
		if trimmed := strings.TrimRight(rest, " \t"); trimmed != rest && trimmed != "" {
			s = trimmed
			d.Unsigned = true
		}
	}

	if open := strings.IndexByte(s, '('); open >= 0 {
		if !strings.HasSuffix(s, ")") {
			return Datatype{}, parseErr(errMalformedDatatype, raw, "unterminated argument list")
		}
		name := strings.TrimSpace(s[:open])
		if !djTypes[name] {
			return Datatype{}, parseErr(errMalformedDatatype, raw, "unknown datatype %q", name)
		}
		inside := s[open+1 : len(s)-1]
		if strings.TrimSpace(inside) == "" {
			return Datatype{}, parseErr(errMalformedDatatype, raw, "empty argument list")
		}
		d.Name = name
		d.Args = argsFromTokens(splitTypeArgs(inside))
		return d, nil
	}

	if name, store, ok := strings.Cut(s, "@"); ok {
		name = strings.TrimSpace(name)
		if !storeKinds[name] {
			return Datatype{}, parseErr(errMalformedDatatype, raw, "type %q cannot reference an external store", name)
		}
		store = strings.TrimSpace(store)
		if store == "" {
			return Datatype{}, parseErr(errMalformedDatatype, raw, "missing store name after @")
		}
		d.Name = name
		d.Args = strArg(store)
		return d, nil
	}

	if !djTypes[s] {
		return Datatype{}, parseErr(errMalformedDatatype, raw, "unknown datatype %q", s)
	}
	d.Name = s
	return d, nil
}
