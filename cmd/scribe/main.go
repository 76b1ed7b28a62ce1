// Command scribe extracts plain text from a PDF file and writes it to
// standard output.
package main

import (
	"fmt"
	"os"

	"github.com/tsawler/scribe"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: scribe <pdf-path>")
		os.Exit(1)
	}

	text, warnings, err := scribe.Open(os.Args[1]).Text()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scribe: %v\n", err)
		os.Exit(1)
	}
	if len(warnings) > 0 {
		fmt.Fprintf(os.Stderr, "scribe: %s\n", scribe.FormatWarnings(warnings))
	}

	fmt.Println(text)
}
