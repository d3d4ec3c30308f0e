package main

import (
	"fmt"
	"strings"
)

// pythonRenderer emits datajoint-python class declarations. A batch run
// produces a single module holding the schema object and every class.
type pythonRenderer struct{}

func (pythonRenderer) Name() string          { return "python" }
func (pythonRenderer) CommentLeader() string { return "# " }

// Render wraps the definition block in a decorated class whose definition
// attribute is a block string, indented one level.
func (pythonRenderer) Render(t *Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@schema\nclass %s(dj.%s):\n", t.Name, t.Tier)
	b.WriteString("    definition = \"\"\"\n")
	for _, line := range strings.Split(t.Definition(), "\n") {
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("    \"\"\"")
	return b.String()
}

func (r pythonRenderer) Artifacts(schema string, tables []*Table, banner string) []artifact {
	var b strings.Builder
	if banner != "" {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "import datajoint as dj\n\nschema = dj.schema('%s')\n", schema)
	for _, t := range tables {
		b.WriteByte('\n')
		b.WriteString(r.Render(t))
		b.WriteByte('\n')
	}
	return []artifact{{path: schema + ".py", data: b.String()}}
}
