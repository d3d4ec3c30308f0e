package main

import "strings"

// Row is one body row of a table definition: an attribute declaration or a
// dependency on another table.
type Row interface {
	// String renders the row as a definition line.
	String() string
}

// Comment is a table-level comment, the leading "# ..." line of a definition.
type Comment struct {
	Text string `json:"comment" yaml:"comment"`
}

func (c Comment) String() string { return "# " + c.Text }

// Dependency references another table's primary key ("-> Session").
// Resolving the referenced attributes needs a live schema, so only the
// target name is carried.
type Dependency struct {
	Target string `json:"dependency" yaml:"dependency"`
}

func (d Dependency) String() string { return "-> " + d.Target }

// Table holds the parsed model of one table definition. Keys are the rows
// above the --- divider (the primary key), Attributes the rows below.
type Table struct {
	Name       string   `json:"name" yaml:"name"`
	Tier       Tier     `json:"tier" yaml:"tier"`
	Comment    *Comment `json:"comment" yaml:"comment"`
	Keys       []Row    `json:"keys" yaml:"keys"`
	Attributes []Row    `json:"attributes" yaml:"attributes"`
}

// Definition renders the canonical definition block: comment line, key
// rows, divider, attribute rows. Both target languages embed this block
// verbatim, so parsing it back yields an equal Table.
func (t *Table) Definition() string {
	var lines []string
	if t.Comment != nil {
		lines = append(lines, t.Comment.String())
	}
	for _, r := range t.Keys {
		lines = append(lines, r.String())
	}
	lines = append(lines, "---")
	for _, r := range t.Attributes {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
