package main

import "strings"

// parseDependency parses a "-> Target" reference row.
func parseDependency(line string) (Dependency, error) {
	target := strings.TrimSpace(strings.TrimPrefix(line, "->"))
	if target == "" {
		return Dependency{}, parseErr(errMalformedAttributeLine, line, "missing dependency target")
	}
	return Dependency{Target: target}, nil
}

// parseDefinition parses a full table definition block.
//
// The block is scanned line by line: a leading "# ..." line (before any
// other content, with no ':') is the table comment, a line of exactly "---"
// divides primary key rows from dependent attribute rows, "->" lines are
// dependencies, and every other non-blank line is an attribute declaration.
func parseDefinition(name string, tier Tier, definition string) (*Table, error) {
	t := &Table{
		Name:       name,
		Tier:       tier,
		Keys:       []Row{},
		Attributes: []Row{},
	}

	seen := map[string]bool{}
	sawContent := false
	sawDivider := false

	addRow := func(r Row) {
		if sawDivider {
			t.Attributes = append(t.Attributes, r)
		} else {
			t.Keys = append(t.Keys, r)
		}
	}

	for _, raw := range strings.Split(definition, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		leading := !sawContent
		sawContent = true

		switch {
		case line == "---":
			if sawDivider {
				return nil, parseErr(errMalformedDefinition, definition, "more than one --- divider")
			}
			sawDivider = true

		case strings.HasPrefix(line, "#"):
			// Only a leading comment line names the table; later comment
			// lines carry no model information.
			if leading && !strings.Contains(line, ":") {
				t.Comment = &Comment{Text: strings.TrimSpace(strings.TrimPrefix(line, "#"))}
			}

		case strings.HasPrefix(line, "->"):
			dep, err := parseDependency(line)
			if err != nil {
				return nil, err
			}
			addRow(dep)

		default:
			attr, err := parseAttribute(line)
			if err != nil {
				return nil, err
			}
			if seen[attr.Name] {
				return nil, parseErr(errMalformedDefinition, definition, "duplicate attribute name %q", attr.Name)
			}
			seen[attr.Name] = true
			addRow(attr)
		}
	}

	if !sawContent {
		return nil, parseErr(errEmptyDefinition, definition, "definition has no content")
	}
	if !sawDivider && len(t.Keys) > 0 {
		return nil, parseErr(errMissingDivider, definition, "definition has rows but no --- divider")
	}
	return t, nil
}
