package main

import "strings"

// expandBanner renders the configured banner for one target language:
// {{schema}} and {{version}} placeholders are substituted and every line is
// prefixed with the language's comment leader. Returns "" when no banner is
// configured.
func expandBanner(text, schema, leader string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "{{schema}}", schema)
	text = strings.ReplaceAll(text, "{{version}}", versionString())

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = strings.TrimRight(leader, " ")
		} else {
			lines[i] = leader + line
		}
	}
	return strings.Join(lines, "\n")
}
