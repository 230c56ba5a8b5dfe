package cli

import (
	"fmt"
	"os"

	"github.com/dshills/bracketpair/internal/config"
	"github.com/dshills/bracketpair/internal/langdetect"
	"github.com/dshills/bracketpair/internal/textbuf"
	"github.com/dshills/bracketpair/internal/textbuf/buffer"
)

// resolveConfig loads the bracket-category config for a run: an
// explicit --config path wins, otherwise the target file's language
// picks a default.
func resolveConfig(configPath, targetFile string, content []byte) (*config.Config, error) {
	if configPath == "" {
		return langdetect.ForFile(targetFile, content), nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", configPath, err)
	}
	cfg, err := config.Load(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}
	return cfg, nil
}

// newTokenizer builds a textbuf.Tokenizer over content, classified per
// cfg's bracket categories, along with the buffer.Buffer backing it
// (callers use it to slice out the text a BracketRange covers).
func newTokenizer(cfg *config.Config, content string) (*textbuf.Tokenizer, *buffer.Buffer, error) {
	buf := buffer.NewBufferFromString(content)
	tok, err := tokenizerFor(cfg, buf)
	if err != nil {
		return nil, nil, err
	}
	return tok, buf, nil
}

// tokenizerFor builds a textbuf.Tokenizer over an existing buffer,
// classified per cfg's bracket categories. A Tokenizer is single-use
// (one parse pass), so callers that mutate buf in place across
// multiple parses (e.g. the watch subcommand's reparse loop) build a
// fresh one from the same buffer on every change instead of rebuilding
// the buffer itself.
func tokenizerFor(cfg *config.Config, buf *buffer.Buffer) (*textbuf.Tokenizer, error) {
	pairs, categoryOf, err := cfg.BracketTable()
	if err != nil {
		return nil, fmt.Errorf("build bracket table: %w", err)
	}
	return textbuf.New(buf, textbuf.WithCategories(pairs, categoryOf)), nil
}
