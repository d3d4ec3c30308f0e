package main

import (
	"strings"
	"testing"
)

func TestCollectDefinitionWarnings(t *testing.T) {
	tests := []struct {
		name string
		def  string
		want []string // substrings, one per expected warning
	}{
		{"clean definition", "subject_id : int\n---\nweight : decimal(5,2)", nil},
		{"no primary key", "---\nvalue : longblob", []string{"no primary key rows"}},
		{"default on key", "subject_id = 0 : int\n---", []string{"default value"}},
		{"blob in key", "recording : blob@raw\n---", []string{"blob-family"}},
		{"attach in key", "payload : attach\n---", []string{"blob-family"}},
		{"float in key", "threshold : float\n---", []string{"floating-point"}},
		{"dependency key is fine", "-> Session\n---\nvalue : int", nil},
		{"colon comment in key", "id : int # : hidden\n---", []string{"must not start with a colon"}},
		{"colon comment in attribute", "id : int\n---\nx : varchar(10) # : note", []string{"must not start with a colon"}},
		{"several at once", "w = 1 : double\n---", []string{"default value", "floating-point"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := parseDefinition("Scan", TierManual, tt.def)
			if err != nil {
				t.Fatalf("parseDefinition(%q) error: %v", tt.def, err)
			}
			got := collectDefinitionWarnings(table)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d warnings %v, want %d", len(got), got, len(tt.want))
			}
			for i, sub := range tt.want {
				if !strings.Contains(got[i], sub) {
					t.Errorf("warning[%d] = %q, want it to contain %q", i, got[i], sub)
				}
			}
		})
	}
}

func TestCollectDefinitionWarnings_NameConvention(t *testing.T) {
	table, err := parseDefinition("session_log", TierManual, "id : int\n---")
	if err != nil {
		t.Fatalf("parseDefinition() error: %v", err)
	}
	got := collectDefinitionWarnings(table)
	if len(got) != 1 || !strings.Contains(got[0], "CamelCase") {
		t.Errorf("warnings = %v, want a CamelCase warning", got)
	}
}

func TestCollectDefinitionWarnings_MentionTableAndAttribute(t *testing.T) {
	table, err := parseDefinition("Scan", TierManual, "image : longblob\n---")
	if err != nil {
		t.Fatalf("parseDefinition() error: %v", err)
	}
	got := collectDefinitionWarnings(table)
	if len(got) != 1 {
		t.Fatalf("got %d warnings, want 1", len(got))
	}
	if !strings.HasPrefix(got[0], "Scan.image (longblob): ") {
		t.Errorf("warning = %q, want table.attr (type) prefix", got[0])
	}
}
