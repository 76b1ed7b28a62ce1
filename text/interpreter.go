package text

import (
	"github.com/tsawler/scribe/contentstream"
)

// wordGapThreshold is the TJ displacement below which a word gap is
// assumed. It is an uncalibrated heuristic, not scaled by font size or the
// text matrix; kept as-is.
const wordGapThreshold = -120

// interpreter is the per-chunk stack machine. It consumes one chunk's
// token sequence and collects logical text lines, discarding the graphics,
// font, and layout operators it does not understand.
type interpreter struct {
	stack   []contentstream.Object
	current string
	lines   []string
}

// ExtractLines interprets one decompressed chunk and returns its text
// lines in token order. Chunks that show no text yield no lines. It never
// fails; unrecognized operators and unmet operand preconditions have no
// text effect.
func ExtractLines(data []byte) []string {
	in := &interpreter{}
	tok := contentstream.NewTokenizer(data)
	for {
		obj, ok := tok.Next()
		if !ok {
			break
		}
		in.process(obj)
	}
	in.flush()
	return in.lines
}

// process pushes value tokens and dispatches name tokens as operators.
func (in *interpreter) process(obj contentstream.Object) {
	if name, ok := obj.(contentstream.Name); ok {
		in.operate(string(name))
		return
	}
	in.stack = append(in.stack, obj)
}

// operate runs one operator against the operand stack. Each recognized
// operator has its own handler; everything else, including slash names,
// has no text effect. The operand stack is cleared after every operator,
// recognized or not, even when a handler's precondition fails.
func (in *interpreter) operate(op string) {
	switch op {
	case "Tj":
		in.showText()
	case "'":
		in.nextLineShowText()
	case "\"":
		in.nextLineShowTextSpaced()
	case "TJ":
		in.showTextArray()
	case "Td", "TD", "Tm":
		in.flush()
	case "BT", "ET":
		in.flush()
	}
	in.stack = in.stack[:0]
}

// showText handles Tj: append the topmost string to the current line.
func (in *interpreter) showText() {
	if s, ok := in.top().(contentstream.String); ok {
		in.current += string(s)
	}
}

// nextLineShowText handles ': flush the current line, then start a new
// one with the topmost string.
func (in *interpreter) nextLineShowText() {
	if s, ok := in.top().(contentstream.String); ok {
		in.flush()
		in.current = string(s)
	}
}

// nextLineShowTextSpaced handles ": like ' but with two leading spacing
// operands, which are discarded.
func (in *interpreter) nextLineShowTextSpaced() {
	if len(in.stack) < 3 {
		return
	}
	s, ok := in.top().(contentstream.String)
	if !ok {
		return
	}
	in.flush()
	in.current = string(s)
}

// showTextArray handles TJ: append string elements to the current line and
// turn any displacement below the word-gap threshold into a single space.
func (in *interpreter) showTextArray() {
	arr, ok := in.top().(contentstream.Array)
	if !ok {
		return
	}
	for _, el := range arr {
		switch v := el.(type) {
		case contentstream.String:
			in.current += string(v)
		case contentstream.Int:
			if v < wordGapThreshold {
				in.current += " "
			}
		case contentstream.Real:
			if v < wordGapThreshold {
				in.current += " "
			}
		}
	}
}

// top returns the topmost operand, or nil when the stack is empty.
func (in *interpreter) top() contentstream.Object {
	if len(in.stack) == 0 {
		return nil
	}
	return in.stack[len(in.stack)-1]
}

// flush commits the current line to the output if it is non-empty, then
// resets it. Flushing an empty accumulator is a no-op; it never emits a
// placeholder blank line.
func (in *interpreter) flush() {
	if in.current != "" {
		in.lines = append(in.lines, in.current)
		in.current = ""
	}
}
