package filters

import (
	"bytes"
	"compress/zlib"
	"testing"
)

// zlibCompress compresses data with the standard library for test fixtures.
func zlibCompress(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	return buf.Bytes()
}

// TestFlateDecode tests decompressing valid zlib data
func TestFlateDecode(t *testing.T) {
	original := []byte("BT (Hello, World) Tj ET")
	compressed := zlibCompress(t, original)

	decoded, err := FlateDecode(compressed)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}

	if !bytes.Equal(decoded, original) {
		t.Errorf("expected %q, got %q", original, decoded)
	}
}

// TestFlateDecodeEmpty tests decompressing an empty payload
func TestFlateDecodeEmpty(t *testing.T) {
	compressed := zlibCompress(t, nil)

	decoded, err := FlateDecode(compressed)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}

	if len(decoded) != 0 {
		t.Errorf("expected empty output, got %d bytes", len(decoded))
	}
}

// TestFlateDecodeInvalid tests that garbage input returns an error
func TestFlateDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"plain text", []byte("this is not compressed")},
		{"empty", nil},
		{"bad header", []byte{0xFF, 0xFE, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FlateDecode(tt.data); err == nil {
				t.Error("expected error for invalid input, got nil")
			}
		})
	}
}

// TestFlateDecodeTruncated tests that truncated zlib data returns an error
func TestFlateDecodeTruncated(t *testing.T) {
	compressed := zlibCompress(t, bytes.Repeat([]byte("content stream data "), 50))

	if _, err := FlateDecode(compressed[:len(compressed)/2]); err == nil {
		t.Error("expected error for truncated input, got nil")
	}
}
