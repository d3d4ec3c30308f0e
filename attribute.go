package main

import "strings"

// Attribute is one attribute declaration row of a table definition:
// "name [= default] : datatype [# comment]".
type Attribute struct {
	Name    string   `json:"name" yaml:"name"`
	Type    Datatype `json:"datatype" yaml:"datatype"`
	Comment string   `json:"comment" yaml:"comment"`
	Default *string  `json:"default" yaml:"default"`
}

func (a Attribute) String() string {
	var b strings.Builder
	b.WriteString(a.Name)
	if a.Default != nil {
		b.WriteString(" = ")
		b.WriteString(*a.Default)
	}
	b.WriteString(" : ")
	b.WriteString(a.Type.String())
	if a.Comment != "" {
		b.WriteString(" # ")
		b.WriteString(a.Comment)
	}
	return b.String()
}

// parseAttribute parses a single attribute row. The line splits once on the
// first ':'; the left side is the name with an optional '=' default, the
// right side is the datatype with an optional '#' comment.
func parseAttribute(line string) (Attribute, error) {
	left, rest, found := strings.Cut(line, ":")
	if !found {
		return Attribute{}, parseErr(errMalformedAttributeLine, line, "missing ':' separator")
	}

	var attr Attribute
	if name, def, hasDefault := strings.Cut(left, "="); hasDefault {
		attr.Name = strings.TrimSpace(name)
		if d := strings.TrimSpace(def); d != "" {
			attr.Default = &d
		}
	} else {
		attr.Name = strings.TrimSpace(left)
	}
	if attr.Name == "" {
		return Attribute{}, parseErr(errMalformedAttributeLine, line, "missing attribute name")
	}

	typeExpr, comment, _ := strings.Cut(rest, "#")
	attr.Comment = strings.TrimSpace(comment)

	dt, err := parseDatatype(typeExpr)
	if err != nil {
		return Attribute{}, err
	}
	attr.Type = dt
	return attr, nil
}
