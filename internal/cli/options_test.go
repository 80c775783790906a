package cli

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("faget")
	return ParseArgs(fs, argv)
}

func tmpFasta(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(path, []byte(">a\nACGT\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	fa := tmpFasta(t)
	opt, err := parse(t, "--fasta", fa)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.Delimiter != "\t" || opt.Format != "table" || !opt.WriteSequence {
		t.Fatalf("unexpected defaults: %+v", opt)
	}
	if opt.Start != -1 || opt.End != -1 {
		t.Fatalf("slice bounds must default to unset: %+v", opt)
	}
}

func TestParsePositionalInput(t *testing.T) {
	fa := tmpFasta(t)
	opt, err := parse(t, "--id", "a", fa)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.FastaFile != fa || opt.SequenceID != "a" {
		t.Fatalf("positional input not picked up: %+v", opt)
	}
}

func TestParseColumns(t *testing.T) {
	fa := tmpFasta(t)
	opt, err := parse(t, "--columns", "0, 2", fa)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(opt.Columns) != 2 || opt.Columns[0] != 0 || opt.Columns[1] != 2 {
		t.Fatalf("columns = %v", opt.Columns)
	}
}

func TestParseNegativeColumn(t *testing.T) {
	fa := tmpFasta(t)
	if _, err := parse(t, "--columns", "0,-2", fa); err == nil {
		t.Fatalf("expected error for negative column index")
	}
}

func TestParseMissingInput(t *testing.T) {
	if _, err := parse(t, "--id", "a"); err == nil {
		t.Fatalf("expected error when no input file is given")
	}
}

func TestParseConflictingInputs(t *testing.T) {
	fa := tmpFasta(t)
	if _, err := parse(t, "--fasta", fa, fa); err == nil {
		t.Fatalf("expected conflict between --fasta and positional")
	}
}

func TestParseInvalidFormat(t *testing.T) {
	fa := tmpFasta(t)
	if _, err := parse(t, "--format", "xml", fa); err == nil {
		t.Fatalf("expected error for invalid format")
	}
}

func TestParseNoSequence(t *testing.T) {
	fa := tmpFasta(t)
	opt, err := parse(t, "--no-sequence", fa)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.WriteSequence {
		t.Fatalf("--no-sequence must disable sequence output")
	}
}

func TestParseHelp(t *testing.T) {
	if _, err := parse(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}
