// internal/appcore/core.go
package appcore

import (
	"fmt"
	"io"
	"os"

	"faget-core/fasta"
	"faget/internal/cmdutil"
	"faget/internal/output"
	"faget/internal/writers"
)

// Options is the orchestrator's call surface, decoupled from flag
// parsing so library callers and tests can drive it directly.
type Options struct {
	FastaFile  string
	SequenceID string

	Start int // -1 = unset
	End   int // -1 = unset

	OutputFile      string
	Format          string
	Delimiter       string
	Columns         []int
	WriteSequence   bool
	NoMatchExitCode int

	Quiet bool
}

// Run executes the linear pipeline: validate → normalize → parse →
// select → slice (single-ID path only) → write.
//
// Failures fall into two tiers. Validation failures propagate as a
// usage-style exit (2). Failures past validation — parse, slice, write
// — are reported as a notice on stderr and Run returns 0: the outcome
// is visible to a human, not to control flow.
func Run(o Options, stdout, stderr io.Writer) int {
	if _, err := os.Stat(o.FastaFile); err != nil {
		fmt.Fprintf(stderr, "error: input file %s: %v\n", o.FastaFile, err)
		return 2
	}

	if len(o.Columns) == 0 {
		o.Columns = nil
	}
	if o.Format == "" {
		o.Format = output.FormatTable
	}
	if o.SequenceID == "" && (o.Start >= 0 || o.End >= 0) {
		cmdutil.Warnf(stderr, o.Quiet, "--start/--end apply only with --id; ignoring")
	}

	recs, err := fasta.ParseFile(o.FastaFile)
	if err != nil {
		return reportf(stderr, "An error occurred while processing the file: %v", err)
	}

	wopts := output.Options{
		Delimiter:     o.Delimiter,
		Columns:       o.Columns,
		WriteSequence: o.WriteSequence,
	}

	if o.SequenceID == "" {
		if err := writers.WriteRecords(o.OutputFile, o.Format, recs, wopts); err != nil {
			return reportf(stderr, "An error occurred while processing the file: %v", err)
		}
		return 0
	}

	rec, ok := fasta.Find(recs, o.SequenceID)
	if !ok {
		cmdutil.Noticef(stdout, o.Quiet, "ID %s not found in the FASTA file.", o.SequenceID)
		return o.NoMatchExitCode
	}

	rec.Seq, err = fasta.Slice(rec.Seq, o.Start, o.End)
	if err != nil {
		return reportf(stderr, "An error occurred while processing the file: %v", err)
	}

	cmdutil.Noticef(stdout, o.Quiet, "ID: %s", rec.ID)
	if o.WriteSequence {
		cmdutil.Noticef(stdout, o.Quiet, "Sequence Length: %d", len(rec.Seq))
	}

	if err := writers.WriteRecords(o.OutputFile, o.Format, []fasta.Record{rec}, wopts); err != nil {
		return reportf(stderr, "An error occurred while processing the file: %v", err)
	}
	return 0
}

// reportf is the reported-not-propagated tier: the message always
// reaches stderr and the run still counts as complete.
func reportf(stderr io.Writer, format string, a ...any) int {
	cmdutil.Noticef(stderr, false, format, a...)
	return 0
}
