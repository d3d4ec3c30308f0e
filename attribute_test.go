package main

import (
	"errors"
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Attribute
	}{
		{"name type comment", "username : varchar(20) # unique user name",
			Attribute{Name: "username", Type: Datatype{Name: "varchar", Args: intArg(20)}, Comment: "unique user name"}},
		{"extra spacing before comment", "username : varchar(20)   # unique user name",
			Attribute{Name: "username", Type: Datatype{Name: "varchar", Args: intArg(20)}, Comment: "unique user name"}},
		{"name type only", "first_name : varchar(30)",
			Attribute{Name: "first_name", Type: Datatype{Name: "varchar", Args: intArg(30)}}},
		{"with default", "failures = 0 : int unsigned",
			Attribute{Name: "failures", Type: Datatype{Name: "int", Unsigned: true}, Default: strPtr("0")}},
		{"default and comment", "role = 'viewer' : varchar(16) # access level",
			Attribute{Name: "role", Type: Datatype{Name: "varchar", Args: intArg(16)}, Comment: "access level", Default: strPtr("'viewer'")}},
		{"null default", "notes = null : varchar(256)",
			Attribute{Name: "notes", Type: Datatype{Name: "varchar", Args: intArg(256)}, Default: strPtr("null")}},
		{"empty default treated as absent", "notes = : varchar(256)",
			Attribute{Name: "notes", Type: Datatype{Name: "varchar", Args: intArg(256)}}},
		{"comment keeps inner hash", "x : int # count # raw",
			Attribute{Name: "x", Type: Datatype{Name: "int"}, Comment: "count # raw"}},
		{"tight spacing", "n:int#c",
			Attribute{Name: "n", Type: Datatype{Name: "int"}, Comment: "c"}},
		{"store type", "recording : blob@raw # extracellular trace",
			Attribute{Name: "recording", Type: Datatype{Name: "blob", Args: strArg("raw")}, Comment: "extracellular trace"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAttribute(tt.in)
			if err != nil {
				t.Fatalf("parseAttribute(%q) error: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseAttribute(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAttribute_Errors(t *testing.T) {
	tests := []struct {
		in   string
		kind error
	}{
		{"no colon here", errMalformedAttributeLine},
		{": varchar(20)", errMalformedAttributeLine},
		{" = 5 : int", errMalformedAttributeLine},
		{"username : bigint", errMalformedDatatype},
		{"username :", errMalformedDatatype},
		{"username : # just a comment", errMalformedDatatype},
	}
	for _, tt := range tests {
		_, err := parseAttribute(tt.in)
		if err == nil {
			t.Errorf("parseAttribute(%q) expected error", tt.in)
			continue
		}
		if !errors.Is(err, tt.kind) {
			t.Errorf("parseAttribute(%q) error = %v, want %v", tt.in, err, tt.kind)
		}
	}
}

func TestParseAttribute_ErrorCarriesLine(t *testing.T) {
	line := "no colon here"
	_, err := parseAttribute(line)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("parseAttribute error = %T, want *ParseError", err)
	}
	if pe.Input != line {
		t.Errorf("ParseError.Input = %q, want %q", pe.Input, line)
	}
}

func TestAttributeString(t *testing.T) {
	tests := []struct {
		in   Attribute
		want string
	}{
		{Attribute{Name: "username", Type: Datatype{Name: "varchar", Args: intArg(20)}, Comment: "unique user name"},
			"username : varchar(20) # unique user name"},
		{Attribute{Name: "first_name", Type: Datatype{Name: "varchar", Args: intArg(30)}},
			"first_name : varchar(30)"},
		{Attribute{Name: "failures", Type: Datatype{Name: "int", Unsigned: true}, Default: strPtr("0")},
			"failures = 0 : int unsigned"},
		{Attribute{Name: "role", Type: Datatype{Name: "varchar", Args: intArg(16)}, Comment: "access level", Default: strPtr("'viewer'")},
			"role = 'viewer' : varchar(16) # access level"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Attribute.String() = %q, want %q", got, tt.want)
		}
	}
}

// A rendered attribute line parses back to the same attribute.
func TestAttributeRoundTrip(t *testing.T) {
	lines := []string{
		"username : varchar(20) # unique user name",
		"failures = 0 : int unsigned",
		"role : enum('admin', 'contributor', 'viewer')",
		"score = 1 : decimal(8,2)",
		"recording : blob@raw",
	}
	for _, line := range lines {
		attr, err := parseAttribute(line)
		if err != nil {
			t.Fatalf("parseAttribute(%q) error: %v", line, err)
		}
		if got := attr.String(); got != line {
			t.Errorf("round trip of %q = %q", line, got)
		}
	}
}
