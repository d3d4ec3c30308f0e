package main

import (
	"fmt"
	"path"
	"strings"
)

// matlabRenderer emits datajoint-matlab class declarations. MATLAB allows
// one classdef per file, so a batch run produces a +schema package
// directory with one .m file per table.
type matlabRenderer struct{}

func (matlabRenderer) Name() string          { return "matlab" }
func (matlabRenderer) CommentLeader() string { return "% " }

// Render emits the definition inside a %{ %} block comment followed by the
// classdef declaration. The block holds the definition verbatim.
func (matlabRenderer) Render(t *Table) string {
	var b strings.Builder
	b.WriteString("%{\n")
	b.WriteString(t.Definition())
	b.WriteString("\n%}\n\n")
	fmt.Fprintf(&b, "classdef %s < dj.%s\nend", t.Name, t.Tier)
	return b.String()
}

func (r matlabRenderer) Artifacts(schema string, tables []*Table, banner string) []artifact {
	artifacts := make([]artifact, 0, len(tables))
	for _, t := range tables {
		var b strings.Builder
		if banner != "" {
			b.WriteString(banner)
			b.WriteString("\n\n")
		}
		b.WriteString(r.Render(t))
		b.WriteByte('\n')
		artifacts = append(artifacts, artifact{
			path: path.Join("+"+schema, t.Name+".m"),
			data: b.String(),
		})
	}
	return artifacts
}
