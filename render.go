package main

import "fmt"

// renderer abstracts target-language output so djbabel can emit the same
// parsed model for multiple DataJoint client languages.
type renderer interface {
	// Name returns the language name as used in config and flags.
	Name() string

	// Render returns the class declaration for a single table, embedding
	// its definition block.
	Render(t *Table) string

	// CommentLeader returns the prefix that makes a line a comment in the
	// target language. Used for banner blocks.
	CommentLeader() string

	// Artifacts maps rendered tables to the files of a batch run, with
	// paths relative to the output directory. banner is an already
	// comment-prefixed block, or empty.
	Artifacts(schema string, tables []*Table, banner string) []artifact
}

// artifact is one generated output file.
type artifact struct {
	path string // relative to the output directory
	data string
}

// newRenderer returns the renderer for the given target language.
func newRenderer(lang string) (renderer, error) {
	switch lang {
	case "python":
		return pythonRenderer{}, nil
	case "matlab":
		return matlabRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w %q (must be python or matlab)", errUnsupportedLanguage, lang)
	}
}
