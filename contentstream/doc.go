// Package contentstream provides tokenization of PDF content streams.
//
// Content streams contain the instructions for rendering page content.
// This package scans a decompressed stream chunk into a flat sequence of
// values and operator names, which the text package interprets:
//
//	tok := contentstream.NewTokenizer(chunkData)
//	for {
//	    obj, ok := tok.Next()
//	    if !ok {
//	        break
//	    }
//	    // obj is an Int, Real, String, Name, or Array
//	}
//
// The scan is deliberately tolerant. It has no object model: dictionaries
// are skipped as opaque spans, names carry their leading slash, and every
// malformed construct has a silent fallback instead of an error. String
// bytes are decoded as Latin-1; font encodings are not interpreted.
package contentstream
