// internal/writers/save.go
package writers

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"faget/internal/output"
)

// Argument-shape errors. These propagate to the caller: misuse of the
// low-level writer is a programming error, not a pipeline outcome.
var (
	ErrNoIDs          = errors.New("ids must be a non-empty list")
	ErrNoFilename     = errors.New("filename must be a non-empty string")
	ErrNegativeColumn = errors.New("columns must be non-negative integers")
)

// SaveIDs writes one projected ID line per entry to filename, followed
// by the matching sequence line when sequences is non-nil and the entry
// is non-empty. Any pre-existing file at filename is deleted first; if
// writing fails the partial file is removed so the destination never
// retains incomplete data.
func SaveIDs(ids []string, filename, delimiter string, columns []int, sequences []string) error {
	if len(ids) == 0 {
		return ErrNoIDs
	}
	if filename == "" {
		return ErrNoFilename
	}
	for _, c := range columns {
		if c < 0 {
			return fmt.Errorf("column %d: %w", c, ErrNegativeColumn)
		}
	}

	return writeFile(filename, func(w *bufio.Writer) error {
		for i, id := range ids {
			if _, err := fmt.Fprintln(w, output.ProjectColumns(id, columns, delimiter)); err != nil {
				return err
			}
			if i >= len(sequences) || sequences[i] == "" {
				continue
			}
			if _, err := fmt.Fprintln(w, sequences[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeFile recreates filename from scratch, hands a buffered writer to
// fn, and removes the file again on any failure.
func writeFile(filename string, fn func(*bufio.Writer) error) error {
	if _, err := os.Stat(filename); err == nil {
		if err := os.Remove(filename); err != nil {
			return fmt.Errorf("remove existing %s: %w", filename, err)
		}
	}

	fh, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}

	w := bufio.NewWriter(fh)
	err = fn(w)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(filename)
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
