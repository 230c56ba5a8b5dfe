// Package langdetect picks a default bracket-category configuration
// for a file based on its detected language, so the CLI does not need
// an explicit --config for common cases.
package langdetect

import (
	"github.com/go-enry/go-enry/v2"

	"github.com/dshills/bracketpair/internal/config"
)

// lispFamily languages use parentheses as their only structural
// delimiter; square and curly brackets appear as ordinary data
// (vectors, maps) rather than as a second and third nesting family,
// so they get a single round-bracket category instead of the default
// three-family split.
var lispFamily = map[string]bool{
	"Common Lisp": true,
	"Scheme":      true,
	"Clojure":     true,
	"Racket":      true,
	"Emacs Lisp":  true,
}

// ForFile returns the bracket-category configuration to use by
// default for a file, based on go-enry's language classification of
// its name and content.
func ForFile(filename string, content []byte) *config.Config {
	lang := enry.GetLanguage(filename, content)
	if lispFamily[lang] {
		return &config.Config{Categories: []config.Category{
			{Name: "round", Open: "(", Close: ")", ID: 2},
		}}
	}
	return config.Default()
}
