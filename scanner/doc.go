// Package scanner locates content-stream bodies in a document buffer.
//
// Discovery is a forward byte-scan for the literal "stream"/"endstream"
// markers, with no object or cross-reference model behind it:
//
//	chunks := scanner.Scan(buf)
//	for _, c := range chunks {
//	    // c.Data is the inflated body, or the raw bytes when
//	    // inflation failed
//	}
//
// Every located body is best-effort decompressed; failure is silent and
// always recoverable by falling back to the raw bytes.
package scanner
