// Package text interprets tokenized content streams into lines of text.
//
// The interpreter is a single-pass stack machine over one chunk's token
// sequence. Value tokens are pushed onto an operand stack; name tokens are
// operators. Only the text-showing operators (Tj, ', ", TJ) and the
// flushing operators (Td, TD, Tm, BT, ET) have any effect; everything else
// just clears the stack:
//
//	lines := text.ExtractLines(chunk.Data)
//
// Assemble merges the per-chunk line lists into the final document text,
// trimming lines and collapsing blank runs.
package text
