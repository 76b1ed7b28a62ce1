package contentstream

import (
	"bytes"
	"math"
	"strconv"

	"golang.org/x/text/encoding/charmap"
)

// Tokenizer scans one decompressed content-stream chunk into a sequence of
// values and operator names. It is a single-pass, forward-only scanner: each
// call to Next consumes input, and a consumed Tokenizer cannot be restarted.
type Tokenizer struct {
	data []byte
	pos  int
}

// NewTokenizer creates a tokenizer over the given chunk data.
func NewTokenizer(data []byte) *Tokenizer {
	return &Tokenizer{data: data}
}

// Next returns the next object from the stream. It reports false once the
// data is exhausted. Malformed input never fails: unterminated strings,
// hex strings, and arrays are accepted up to the end of the data, and a
// bare token that is not a valid number comes back as a Name.
func (t *Tokenizer) Next() (Object, bool) {
	for t.pos < len(t.data) {
		c := t.data[t.pos]
		switch {
		case isWhitespace(c):
			t.pos++
		case c == '%':
			t.skipComment()
		case c == '(':
			t.pos++
			return String(t.readString()), true
		case c == '<':
			if t.pos+1 < len(t.data) && t.data[t.pos+1] == '<' {
				t.skipDictionary()
			} else {
				return String(t.readHexString()), true
			}
		case c == '[':
			return t.readArray(), true
		case c == '/':
			return Name(t.readName()), true
		default:
			tok := t.readBareToken()
			if tok == "" {
				// Stray delimiter; consume it so the scan advances.
				t.pos++
				continue
			}
			if num, ok := parseNumber(tok); ok {
				return num, true
			}
			return Name(tok), true
		}
	}
	return nil, false
}

// stringEscapes maps the recognized single-character escapes in a literal
// string to their output byte. Any escaped byte not listed here (and not an
// octal digit) is kept literally with the backslash dropped.
var stringEscapes = map[byte]byte{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'b':  '\b',
	'f':  '\f',
	'(':  '(',
	')':  ')',
	'\\': '\\',
}

// readString decodes a literal string. The position must be just past the
// opening '('. Nesting depth starts at 1; balanced inner parentheses are
// kept literally, and the closing ')' is consumed but not emitted. Running
// off the end of the data ends the string with whatever was accumulated.
func (t *Tokenizer) readString() string {
	var buf bytes.Buffer
	depth := 1

	for t.pos < len(t.data) && depth > 0 {
		c := t.data[t.pos]
		switch c {
		case '\\':
			t.pos++
			if t.pos >= len(t.data) {
				return decodeText(buf.Bytes())
			}
			esc := t.data[t.pos]
			if out, ok := stringEscapes[esc]; ok {
				buf.WriteByte(out)
			} else if esc >= '0' && esc <= '7' {
				// Octal escape: up to 3 octal digits, taken as a raw byte.
				val := int(esc - '0')
				for n := 0; n < 2 && t.pos+1 < len(t.data); n++ {
					next := t.data[t.pos+1]
					if next < '0' || next > '7' {
						break
					}
					val = val*8 + int(next-'0')
					t.pos++
				}
				buf.WriteByte(byte(val))
			} else {
				buf.WriteByte(esc)
			}
		case '(':
			depth++
			buf.WriteByte(c)
		case ')':
			depth--
			if depth > 0 {
				buf.WriteByte(c)
			}
		default:
			buf.WriteByte(c)
		}
		t.pos++
	}

	return decodeText(buf.Bytes())
}

// readHexString decodes a hex string. The position must be at the opening
// '<'. Whitespace between digits is ignored, an odd digit count is padded
// with a trailing '0', and any non-hex character makes the whole string
// decode to "".
func (t *Tokenizer) readHexString() string {
	t.pos++ // skip '<'

	var digits []byte
	for t.pos < len(t.data) && t.data[t.pos] != '>' {
		c := t.data[t.pos]
		if !isWhitespace(c) {
			digits = append(digits, c)
		}
		t.pos++
	}
	if t.pos < len(t.data) {
		t.pos++ // consume '>'
	}

	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}

	raw := make([]byte, 0, len(digits)/2)
	for i := 0; i+1 < len(digits); i += 2 {
		hi, lo := digits[i], digits[i+1]
		if !isHexDigit(hi) || !isHexDigit(lo) {
			return ""
		}
		raw = append(raw, hexValue(hi)<<4|hexValue(lo))
	}

	return decodeText(raw)
}

// readArray parses an array. The position must be at the opening '['.
// Elements are strings, numbers, and nested arrays; names and dictionaries
// are consumed but never stored, and a bare token that is not a valid
// number is kept as raw text. An unterminated array is accepted up to the
// end of the data.
func (t *Tokenizer) readArray() Array {
	t.pos++ // skip '['
	arr := Array{}

	for t.pos < len(t.data) {
		c := t.data[t.pos]
		switch {
		case isWhitespace(c):
			t.pos++
		case c == ']':
			t.pos++
			return arr
		case c == '%':
			t.skipComment()
		case c == '(':
			t.pos++
			arr = append(arr, String(t.readString()))
		case c == '[':
			arr = append(arr, t.readArray())
		case c == '<':
			if t.pos+1 < len(t.data) && t.data[t.pos+1] == '<' {
				t.skipDictionary()
			} else {
				arr = append(arr, String(t.readHexString()))
			}
		case c == '/':
			t.readName()
		default:
			tok := t.readBareToken()
			if tok == "" {
				t.pos++
				continue
			}
			if num, ok := parseNumber(tok); ok {
				arr = append(arr, num)
			} else {
				arr = append(arr, String(tok))
			}
		}
	}

	return arr
}

// readName reads a name token. The position must be at the '/'. The slash
// is kept in the returned value.
func (t *Tokenizer) readName() string {
	t.pos++ // skip '/'
	start := t.pos
	for t.pos < len(t.data) && !isWhitespace(t.data[t.pos]) && !isDelimiter(t.data[t.pos]) {
		t.pos++
	}
	return "/" + decodeText(t.data[start:t.pos])
}

// readBareToken reads a run of non-whitespace, non-delimiter bytes. The
// result is empty when the scan sits on a stray delimiter.
func (t *Tokenizer) readBareToken() string {
	start := t.pos
	for t.pos < len(t.data) && !isWhitespace(t.data[t.pos]) && !isDelimiter(t.data[t.pos]) {
		t.pos++
	}
	return decodeText(t.data[start:t.pos])
}

// skipComment advances past a '%' comment to the end of the line. The
// terminating CR or LF is left in place for the whitespace skip.
func (t *Tokenizer) skipComment() {
	t.pos++ // skip '%'
	for t.pos < len(t.data) && t.data[t.pos] != '\r' && t.data[t.pos] != '\n' {
		t.pos++
	}
}

// skipDictionary skips a dictionary as an opaque span, tracking '<<'/'>>'
// nesting and honoring comments inside. The position must be at the first
// '<' of the opening '<<'. Nothing is stored.
func (t *Tokenizer) skipDictionary() {
	t.pos += 2 // skip '<<'
	depth := 1

	for t.pos < len(t.data) && depth > 0 {
		switch {
		case t.data[t.pos] == '%':
			t.skipComment()
		case t.hasPrefix("<<"):
			depth++
			t.pos += 2
		case t.hasPrefix(">>"):
			depth--
			t.pos += 2
		default:
			t.pos++
		}
	}
}

func (t *Tokenizer) hasPrefix(s string) bool {
	return bytes.HasPrefix(t.data[t.pos:], []byte(s))
}

// parseNumber parses tok against an explicit grammar: an optional sign,
// then digits with at most one decimal point. Exponent forms are rejected,
// so such tokens fall back to names. Integer-valued results are stored as
// Int, everything else as Real.
func parseNumber(tok string) (Object, bool) {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	digits := 0
	for i < len(tok) && isDigit(tok[i]) {
		i++
		digits++
	}
	if i < len(tok) && tok[i] == '.' {
		i++
		for i < len(tok) && isDigit(tok[i]) {
			i++
			digits++
		}
	}
	if digits == 0 || i != len(tok) {
		return nil, false
	}

	val, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, false
	}
	if val == math.Trunc(val) {
		return Int(int64(val)), true
	}
	return Real(val), true
}

// decodeText interprets raw string bytes as Latin-1 (a single-byte
// encoding, not UTF-8) and never fails.
func decodeText(b []byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}

// Helper functions

// isWhitespace reports whether c is a PDF whitespace character:
// space, tab, LF, CR, FF, or null.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == 0
}

// isDelimiter reports whether c ends a bare token or name. '%' is absent:
// comments are only recognized at token start by this tolerant scan.
func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' || c == '/'
}

// isDigit reports whether c is a decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isHexDigit reports whether c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexValue returns the numeric value of a hexadecimal digit.
func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
