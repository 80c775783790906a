// core/fasta/parse.go
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding marks input that is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// Parse scans FASTA from r and returns every record in file order.
// A record is kept only when both its header and its accumulated
// sequence are non-empty; a header immediately followed by another
// header is dropped silently. Empty input yields an empty slice.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		recs []Record
		id   string
		seq  strings.Builder
	)

	flush := func() {
		if id != "" && seq.Len() > 0 {
			recs = append(recs, Record{ID: id, Seq: seq.String()})
		}
		seq.Reset()
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("fasta: %w", ErrInvalidEncoding)
		}
		if strings.HasPrefix(line, ">") {
			flush()
			id = strings.TrimSpace(line[1:])
			continue
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return recs, nil
}

// ParseFile reads path fully and parses it as FASTA.
func ParseFile(path string) ([]Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(fh)
}
