package scanner

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// bodies extracts the decoded chunk bodies as strings.
func bodies(chunks []Chunk) []string {
	var out []string
	for _, c := range chunks {
		out = append(out, string(c.Data))
	}
	return out
}

// TestScanSingleStream tests locating one uncompressed stream
func TestScanSingleStream(t *testing.T) {
	buf := []byte("1 0 obj\n<< /Length 10 >>\nstream\n(Hello) Tj\nendstream\nendobj")

	chunks := Scan(buf)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}

	if got := string(chunks[0].Data); got != "(Hello) Tj" {
		t.Errorf("expected body %q, got %q", "(Hello) Tj", got)
	}
	if chunks[0].Compressed {
		t.Error("expected uncompressed chunk")
	}
}

// TestScanCRLF tests the optional CR before the LF on both markers
func TestScanCRLF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lf only", "stream\nBODY\nendstream", []string{"BODY"}},
		{"crlf after stream", "stream\r\nBODY\nendstream", []string{"BODY"}},
		{"crlf before endstream", "stream\nBODY\r\nendstream", []string{"BODY"}},
		{"crlf both", "stream\r\nBODY\r\nendstream", []string{"BODY"}},
		{"empty body", "stream\n\nendstream", []string{""}},
		{"empty body crlf", "stream\r\n\r\nendstream", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bodies(Scan([]byte(tt.input)))
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("chunks mismatch (-want +got):\n%s", d)
			}
		})
	}
}

// TestScanMultipleStreams tests that discovery order is preserved
func TestScanMultipleStreams(t *testing.T) {
	buf := []byte("stream\nfirst\nendstream junk stream\nsecond\nendstream stream\nthird\nendstream")

	got := bodies(Scan(buf))
	want := []string{"first", "second", "third"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", d)
	}
}

// TestScanMarkerWithoutNewline tests that "stream" not followed by a
// newline does not open a body
func TestScanMarkerWithoutNewline(t *testing.T) {
	buf := []byte("stream data stream\nreal\nendstream")

	got := bodies(Scan(buf))
	want := []string{"real"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", d)
	}
}

// TestScanUnterminated tests that an opener with no terminator yields nothing
func TestScanUnterminated(t *testing.T) {
	if chunks := Scan([]byte("stream\nno end in sight")); chunks != nil {
		t.Errorf("expected no chunks, got %d", len(chunks))
	}
}

// TestScanNoStreams tests a buffer with no markers at all
func TestScanNoStreams(t *testing.T) {
	if chunks := Scan([]byte("%PDF-1.4 nothing here")); chunks != nil {
		t.Errorf("expected no chunks, got %d", len(chunks))
	}
	if chunks := Scan(nil); chunks != nil {
		t.Errorf("expected no chunks for nil buffer, got %d", len(chunks))
	}
}

// TestScanCompressed tests that flate bodies are inflated
func TestScanCompressed(t *testing.T) {
	body := []byte("BT (compressed text) Tj ET")

	var comp bytes.Buffer
	w := zlib.NewWriter(&comp)
	if _, err := w.Write(body); err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	var buf bytes.Buffer
	buf.WriteString("stream\n")
	buf.Write(comp.Bytes())
	buf.WriteString("\nendstream")

	chunks := Scan(buf.Bytes())
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if !chunks[0].Compressed {
		t.Error("expected compressed chunk")
	}
	if !bytes.Equal(chunks[0].Data, body) {
		t.Errorf("expected body %q, got %q", body, chunks[0].Data)
	}
	if !bytes.Equal(chunks[0].Raw, comp.Bytes()) {
		t.Error("expected Raw to hold the bytes as found")
	}
}

// TestScanDecompressFallback tests that inflation failure keeps raw bytes
func TestScanDecompressFallback(t *testing.T) {
	buf := []byte("stream\nnot zlib data at all\nendstream")

	chunks := Scan(buf)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Compressed {
		t.Error("expected fallback to raw bytes")
	}
	if got := string(chunks[0].Data); got != "not zlib data at all" {
		t.Errorf("expected raw body, got %q", got)
	}
}

// TestScanOffset tests that the reported offset points at the body
func TestScanOffset(t *testing.T) {
	buf := []byte("xx stream\r\nBODY\nendstream")

	chunks := Scan(buf)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if want := len("xx stream\r\n"); chunks[0].Offset != want {
		t.Errorf("expected offset %d, got %d", want, chunks[0].Offset)
	}
}
