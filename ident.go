package main

import "fmt"

// pythonKeywords are Python reserved words that cannot name a class.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true, "elif": true,
	"else": true, "except": true, "finally": true, "for": true, "from": true,
	"global": true, "if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true, "with": true,
	"yield": true,
}

// matlabKeywords are MATLAB reserved words (iskeyword) that cannot name a
// classdef.
var matlabKeywords = map[string]bool{
	"break": true, "case": true, "catch": true, "classdef": true,
	"continue": true, "else": true, "elseif": true, "end": true, "for": true,
	"function": true, "global": true, "if": true, "otherwise": true,
	"parfor": true, "persistent": true, "return": true, "spmd": true,
	"switch": true, "try": true, "while": true,
}

// validIdent reports whether name is an identifier both target languages
// accept: a letter or underscore followed by letters, digits or
// underscores. MATLAB additionally requires a letter first.
func validIdent(name string, letterFirst bool) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case r == '_':
			if i == 0 && letterFirst {
				return false
			}
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// checkIdent validates a generated class or schema name against one target
// language. A reserved word or malformed identifier would produce source
// that does not load.
func checkIdent(name, lang string) error {
	switch lang {
	case "python":
		if !validIdent(name, false) {
			return fmt.Errorf("%q is not a valid python identifier", name)
		}
		if pythonKeywords[name] {
			return fmt.Errorf("%q is a python reserved word", name)
		}
	case "matlab":
		if !validIdent(name, true) {
			return fmt.Errorf("%q is not a valid matlab identifier", name)
		}
		if matlabKeywords[name] {
			return fmt.Errorf("%q is a matlab reserved word", name)
		}
	default:
		return fmt.Errorf("%w %q (must be python or matlab)", errUnsupportedLanguage, lang)
	}
	return nil
}
