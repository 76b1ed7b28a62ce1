package scribe

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/scribe/format"
	"github.com/tsawler/scribe/scanner"
	"github.com/tsawler/scribe/text"
)

// Warning describes a non-fatal issue noticed during extraction. The
// pipeline itself never fails on malformed input; warnings are how it
// reports that the output may be incomplete or empty.
type Warning struct {
	Code    string
	Message string
}

// Warning codes.
const (
	WarnNotPDF    = "not-pdf"    // input does not carry a %PDF header
	WarnNoStreams = "no-streams" // no content streams were located
)

// String returns a single-line form of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings renders a warning list as one human-readable line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Extractor extracts text from one PDF document. Create one with Open or
// FromBytes. Terminal operations (Text, Lines, Chunks) run the pipeline
// and return accumulated warnings alongside the result.
type Extractor struct {
	filename string
	data     []byte
	loaded   bool
}

// ensureLoaded reads the source file on first use.
func (e *Extractor) ensureLoaded() error {
	if e.loaded {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	data, err := os.ReadFile(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.data = data
	e.loaded = true
	return nil
}

// Chunks locates and decompresses the document's content streams, in
// discovery order.
func (e *Extractor) Chunks() ([]scanner.Chunk, []Warning, error) {
	if err := e.ensureLoaded(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	if format.DetectFromMagic(e.data) != format.PDF {
		warnings = append(warnings, Warning{
			Code:    WarnNotPDF,
			Message: "input has no %PDF header; extracting anyway",
		})
	}

	chunks := scanner.Scan(e.data)
	if len(chunks) == 0 {
		warnings = append(warnings, Warning{
			Code:    WarnNoStreams,
			Message: "no content streams found",
		})
	}

	return chunks, warnings, nil
}

// Lines runs the full pipeline and returns the raw per-chunk text lines in
// chunk discovery order, before trimming and blank-line collapsing.
func (e *Extractor) Lines() ([]string, []Warning, error) {
	chunks, warnings, err := e.Chunks()
	if err != nil {
		return nil, warnings, err
	}

	var lines []string
	for _, chunk := range chunks {
		lines = append(lines, text.ExtractLines(chunk.Data)...)
	}
	return lines, warnings, nil
}

// Text extracts the document text. It returns the assembled text, any
// warnings accumulated during processing, and an error only when the
// source file cannot be read; malformed document content never fails.
//
// Example:
//
//	text, warnings, err := scribe.Open("document.pdf").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", scribe.FormatWarnings(warnings))
//	}
func (e *Extractor) Text() (string, []Warning, error) {
	lines, warnings, err := e.Lines()
	if err != nil {
		return "", warnings, err
	}
	return text.Assemble(lines), warnings, nil
}
