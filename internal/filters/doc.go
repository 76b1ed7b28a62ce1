// Package filters provides stream decompression for content stream data.
//
// Content streams located by the scanner are usually Flate (zlib/deflate)
// compressed:
//
//	decoded, err := filters.FlateDecode(data)
//
// Decompression is best-effort. Streams using other filters, or no filter
// at all, fail to decode here and are consumed as raw bytes by the caller.
package filters
