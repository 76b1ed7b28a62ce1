// Package scribe provides best-effort plain-text extraction from PDF files.
//
// Basic usage:
//
//	text, warnings, err := scribe.Open("document.pdf").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", scribe.FormatWarnings(warnings))
//	}
//
// scribe is a heuristic text scraper, not a conforming PDF processor. It
// locates content streams by their literal markers, inflates them when
// possible, and interprets the text-showing operators directly, with no
// object model, no font encodings, and no layout reconstruction. Malformed
// input never fails extraction; every such case has a silent fallback, and
// non-fatal oddities surface as warnings.
package scribe

// Open opens a PDF file and returns an Extractor for fluent use.
//
// Example:
//
//	text, warnings, err := scribe.Open("document.pdf").Text()
func Open(filename string) *Extractor {
	return &Extractor{filename: filename}
}

// FromBytes creates an Extractor over an in-memory document buffer. The
// buffer is not copied and must not be mutated during extraction.
//
// Example:
//
//	text, _, err := scribe.FromBytes(data).Text()
func FromBytes(data []byte) *Extractor {
	return &Extractor{data: data, loaded: true}
}

// ExtractText is the core boundary in function form: one immutable byte
// buffer in, the assembled document text out. It never fails; a buffer
// with no recognizable content streams yields the empty string.
func ExtractText(data []byte) string {
	text, _, _ := FromBytes(data).Text()
	return text
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text() or Lines() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	text := scribe.MustText(scribe.Open("document.pdf").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
