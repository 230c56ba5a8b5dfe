// Package buffer is a small mutable byte buffer with line/column
// coordinate conversion, sized to what the tokenizer and the watch
// subcommand's incremental reparse loop actually need: linear storage,
// no rope, no concurrency support, no undo history.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//	buf.Insert(7, "Beautiful ") // "Hello, Beautiful World!"
//	buf.Delete(0, 7)            // "Beautiful World!"
package buffer
