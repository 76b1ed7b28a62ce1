package scanner

import (
	"bytes"

	"github.com/tsawler/scribe/internal/filters"
)

// Chunk is one located content-stream body. Raw holds the bytes exactly as
// found between the markers; Data holds the inflated bytes, or Raw again
// when inflation fails (uncompressed streams and unsupported filters).
type Chunk struct {
	Offset     int    // offset of the body within the source buffer
	Raw        []byte // body bytes as found
	Data       []byte // decompressed body, or Raw on inflation failure
	Compressed bool   // true when Data came from a successful inflate
}

var (
	markerStream = []byte("stream")
	markerEnd    = []byte("\nendstream")
)

// Scan locates content-stream bodies in the whole document buffer and
// returns them in discovery order. This is textual pattern matching,
// independent of any object model: a body opens at the literal marker
// "stream" followed by an optional CR and a required LF, and closes at the
// first LF (with an optional preceding CR, both excluded) immediately
// followed by "endstream". Non-text streams match too; they simply yield
// no recognized operators downstream. Scan never fails.
func Scan(buf []byte) []Chunk {
	var chunks []Chunk

	pos := 0
	for {
		i := bytes.Index(buf[pos:], markerStream)
		if i < 0 {
			break
		}
		start := pos + i + len(markerStream)

		// The marker must be followed by an optional CR, then a LF.
		if start < len(buf) && buf[start] == '\r' {
			start++
		}
		if start >= len(buf) || buf[start] != '\n' {
			pos += i + 1
			continue
		}
		start++

		j := bytes.Index(buf[start:], markerEnd)
		if j < 0 {
			// No terminator ahead means no later marker can close either.
			break
		}
		end := start + j
		pos = end + len(markerEnd)
		if end > start && buf[end-1] == '\r' {
			end--
		}

		chunks = append(chunks, decode(buf[start:end], start))
	}

	return chunks
}

// decode attempts a standard inflate of the body, falling back to the raw
// bytes on any failure.
func decode(raw []byte, offset int) Chunk {
	data, err := filters.FlateDecode(raw)
	if err != nil {
		return Chunk{Offset: offset, Raw: raw, Data: raw}
	}
	return Chunk{Offset: offset, Raw: raw, Data: data, Compressed: true}
}
