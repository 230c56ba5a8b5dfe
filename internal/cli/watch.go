package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dshills/bracketpair/internal/config"
	"github.com/dshills/bracketpair/internal/logging"
	"github.com/dshills/bracketpair/internal/textbuf"
	"github.com/dshills/bracketpair/internal/textbuf/buffer"
	"github.com/dshills/bracketpair/length"
	"github.com/dshills/bracketpair/parser"
)

func newWatchCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse a file on every change and reuse unaffected subtrees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], flags)
		},
	}
}

func runWatch(cmd *cobra.Command, path string, flags *globalFlags) error {
	logger := logging.Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := resolveConfig(flags.configPath, path, content)
	if err != nil {
		return err
	}

	colorizer := parser.NewColorizer()
	buf := buffer.NewBufferFromString(string(content))
	tok, err := tokenizerFor(cfg, buf)
	if err != nil {
		return err
	}
	if err := colorizer.HandleContentChanged(nil, tok); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	printRanges(cmd, flags, buf, colorizer.GetBracketsInRange(length.Zero, tok.TotalLength()))
	logger.Info("watching", logging.FieldFile, path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-interrupt:
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", logging.FieldError, err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := reparseOnChange(colorizer, cfg, buf, path, logger); err != nil {
				logger.Warn("reparse failed", logging.FieldFile, path, logging.FieldError, err)
				continue
			}
			ranges := colorizer.GetBracketsInRange(length.Zero, length.OfString(buf.Text()))
			printRanges(cmd, flags, buf, ranges)
		}
	}
}

// reparseOnChange re-reads path, diffs it against buf's current
// content, mutates buf in place to match via textbuf.ApplyDiff, and
// feeds the same diff to colorizer as an edit batch so unaffected
// subtrees of the previous parse are reused.
func reparseOnChange(colorizer *parser.Colorizer, cfg *config.Config, buf *buffer.Buffer, path string, logger *log.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("re-read %s: %w", path, err)
	}
	newContent := string(raw)

	diff := textbuf.DiffContent(buf.Text(), newContent)
	textEdits := textbuf.ChangesToTextEdits(diff)

	if err := textbuf.ApplyDiff(buf, diff, newContent); err != nil {
		return fmt.Errorf("apply diff to %s: %w", path, err)
	}

	newTok, err := tokenizerFor(cfg, buf)
	if err != nil {
		return err
	}
	if err := colorizer.HandleContentChanged(textEdits, newTok); err != nil {
		return err
	}
	logger.Debug("reparsed",
		logging.FieldFile, path,
		logging.FieldEdits, len(textEdits),
		logging.FieldOldLines, diff.OldLineCount,
		logging.FieldNewLines, diff.NewLineCount,
	)
	return nil
}
