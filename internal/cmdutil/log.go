// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Noticef reports a progress/result message. Notices replace the bare
// prints of earlier revisions so callers can capture or suppress them
// deterministically.
func Noticef(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, format+"\n", a...)
}

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
