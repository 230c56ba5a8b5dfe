// Package config loads the bracket-category configuration the CLI
// tokenizer uses to classify characters, decoupling "which characters
// count as brackets" from the core parser.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrDuplicateCategory is returned when two categories share an ID or
// a bracket character claims two categories.
var ErrDuplicateCategory = errors.New("config: duplicate category or bracket character")

// Category describes one bracket family: an opening and closing
// character sharing a category ID, plus a display name for CLI output.
type Category struct {
	Name  string `yaml:"name"`
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
	ID    int    `yaml:"id"`
}

// Config is the top-level bracket-category document.
type Config struct {
	Categories []Category `yaml:"categories"`
}

// Default returns the three bracket families spec.md's reference
// tokenizer uses: square, round, and curly.
func Default() *Config {
	return &Config{Categories: []Category{
		{Name: "square", Open: "[", Close: "]", ID: 1},
		{Name: "round", Open: "(", Close: ")", ID: 2},
		{Name: "curly", Open: "{", Close: "}", ID: 3},
	}}
}

// Load parses a bracket-category configuration from YAML.
func Load(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if len(cfg.Categories) == 0 {
		return Default(), nil
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	seenID := map[int]bool{}
	seenChar := map[rune]bool{}
	for _, cat := range c.Categories {
		open, err := singleRune(cat.Open)
		if err != nil {
			return fmt.Errorf("config: category %q open: %w", cat.Name, err)
		}
		closeR, err := singleRune(cat.Close)
		if err != nil {
			return fmt.Errorf("config: category %q close: %w", cat.Name, err)
		}
		if seenID[cat.ID] || seenChar[open] || seenChar[closeR] {
			return fmt.Errorf("%w: category %q (id %d)", ErrDuplicateCategory, cat.Name, cat.ID)
		}
		seenID[cat.ID] = true
		seenChar[open] = true
		seenChar[closeR] = true
	}
	return nil
}

func singleRune(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("expected exactly one character, got %q", s)
	}
	return runes[0], nil
}

// BracketTable returns the pairs and per-opener category IDs a
// textbuf.Tokenizer needs, via textbuf.WithCategories. Callers that
// already validated the config (via Load) can ignore the error.
func (c *Config) BracketTable() (pairs map[rune]rune, categoryOf map[rune]int, err error) {
	pairs = make(map[rune]rune, len(c.Categories))
	categoryOf = make(map[rune]int, len(c.Categories))
	for _, cat := range c.Categories {
		open, err := singleRune(cat.Open)
		if err != nil {
			return nil, nil, err
		}
		closeR, err := singleRune(cat.Close)
		if err != nil {
			return nil, nil, err
		}
		pairs[open] = closeR
		categoryOf[open] = cat.ID
	}
	return pairs, categoryOf, nil
}
