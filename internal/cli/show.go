package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/bracketpair/internal/colorize"
	"github.com/dshills/bracketpair/internal/logging"
	"github.com/dshills/bracketpair/internal/textbuf/buffer"
	"github.com/dshills/bracketpair/length"
	"github.com/dshills/bracketpair/parser"
)

func newShowCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Parse a file once and print its bracket ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], flags)
		},
	}
	return cmd
}

func runShow(cmd *cobra.Command, path string, flags *globalFlags) error {
	logger := logging.Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := resolveConfig(flags.configPath, path, content)
	if err != nil {
		return err
	}

	tok, buf, err := newTokenizer(cfg, string(content))
	if err != nil {
		return err
	}

	colorizer := parser.NewColorizer()
	if err := colorizer.HandleContentChanged(nil, tok); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	total := tok.TotalLength()
	ranges := colorizer.GetBracketsInRange(length.Zero, total)
	logger.Debug("parsed", logging.FieldFile, path, logging.FieldTotal, total)

	printRanges(cmd, flags, buf, ranges)
	return nil
}

func printRanges(cmd *cobra.Command, flags *globalFlags, buf *buffer.Buffer, ranges []parser.BracketRange) {
	palette := colorize.NewPalette(colorize.ColorEnabled(flags.color, cmd.OutOrStdout()))
	out := cmd.OutOrStdout()
	for _, r := range ranges {
		ch := textAt(buf, r.Start, r.End)
		fmt.Fprintf(out, "%d:%d  depth=%-2d  %s\n",
			r.Start.Lines+1, r.Start.Columns+1, r.Depth, palette.Paint(r.Depth, ch))
	}
}

// textAt slices buf's content over the byte span [start, end), which
// length.Length and buffer.Point share the same {line, column} shape
// to convert between directly.
func textAt(buf *buffer.Buffer, start, end length.Length) string {
	startOffset := buf.PointToOffset(buffer.Point{Line: start.Lines, Column: start.Columns})
	endOffset := buf.PointToOffset(buffer.Point{Line: end.Lines, Column: end.Columns})
	return buf.TextRange(startOffset, endOffset)
}
