package main

import (
	"fmt"
	"strings"
)

// blobFamily are the types that cannot serve as primary key attributes: a
// key value must be hashable and comparable on the database side.
var blobFamily = map[string]bool{
	"blob": true, "tinyblob": true, "mediumblob": true, "longblob": true,
	"attach": true, "filepath": true,
}

// collectDefinitionWarnings reports definition smells that parse cleanly
// but misbehave once a live pipeline uses the table. Warnings never fail a
// run; they are surfaced so the author can fix the definition at the
// source.
func collectDefinitionWarnings(t *Table) []string {
	var warns []string

	if t.Name != "" && !(t.Name[0] >= 'A' && t.Name[0] <= 'Z') {
		warns = append(warns, fmt.Sprintf("%s: class name is not CamelCase", t.Name))
	}
	if len(t.Keys) == 0 {
		warns = append(warns, fmt.Sprintf("%s: no primary key rows", t.Name))
	}

	for _, row := range t.Keys {
		attr, ok := row.(Attribute)
		if !ok {
			continue
		}
		if attr.Default != nil {
			warns = append(warns, fmt.Sprintf("%s.%s (%s): primary key attribute has a default value",
				t.Name, attr.Name, attr.Type))
		}
		switch {
		case blobFamily[attr.Type.Name]:
			warns = append(warns, fmt.Sprintf("%s.%s (%s): blob-family type cannot be part of a primary key",
				t.Name, attr.Name, attr.Type))
		case attr.Type.Name == "float" || attr.Type.Name == "double":
			warns = append(warns, fmt.Sprintf("%s.%s (%s): floating-point types make unreliable primary keys",
				t.Name, attr.Name, attr.Type))
		}
	}

	// DataJoint reserves a leading colon in attribute comments for its own
	// annotation syntax.
	for _, group := range [][]Row{t.Keys, t.Attributes} {
		for _, row := range group {
			attr, ok := row.(Attribute)
			if !ok {
				continue
			}
			if strings.HasPrefix(attr.Comment, ":") {
				warns = append(warns, fmt.Sprintf("%s.%s (%s): comment must not start with a colon",
					t.Name, attr.Name, attr.Type))
			}
		}
	}
	return warns
}
