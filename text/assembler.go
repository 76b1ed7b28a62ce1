package text

import "strings"

// Assemble merges the line lists of all chunks, already concatenated in
// chunk discovery order, into the final document text. Each line is
// trimmed of surrounding whitespace, any run of consecutive blank lines
// collapses to exactly one empty line, and the result is joined with
// single line breaks.
func Assemble(lines []string) string {
	cleaned := make([]string, 0, len(lines))
	prevBlank := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if !prevBlank {
				cleaned = append(cleaned, "")
			}
			prevBlank = true
			continue
		}
		cleaned = append(cleaned, trimmed)
		prevBlank = false
	}

	return strings.Join(cleaned, "\n")
}
