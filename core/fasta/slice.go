// core/fasta/slice.go
package fasta

import (
	"errors"
	"fmt"
)

// ErrStartAfterEnd is returned when a slice start exceeds its end.
var ErrStartAfterEnd = errors.New("start position cannot be greater than end position")

// Slice returns seq[start:end] using zero-based, end-exclusive bounds.
// A negative start or end means "unset"; unless both bounds are set the
// sequence is returned unchanged. Out-of-range bounds are clamped to
// the available text rather than failing.
func Slice(seq string, start, end int) (string, error) {
	if start < 0 || end < 0 {
		return seq, nil
	}
	if start > end {
		return "", fmt.Errorf("slice %d:%d: %w", start, end, ErrStartAfterEnd)
	}
	if start > len(seq) {
		start = len(seq)
	}
	if end > len(seq) {
		end = len(seq)
	}
	return seq[start:end], nil
}
