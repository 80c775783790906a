// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"faget/internal/cliutil"
	"faget/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	FastaFile  string
	SequenceID string

	// Slicing (single-ID lookups only). -1 means unset.
	Start int
	End   int

	// Output
	OutputFile      string
	Format          string // table | fasta | json
	Delimiter       string
	Columns         []int
	WriteSequence   bool // true unless --no-sequence
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// The FASTA file may be given as --fasta or as the sole positional.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var columns string

	fs.StringVar(&opt.FastaFile, "fasta", "", "input FASTA file [*]")
	fs.StringVar(&opt.FastaFile, "s", "", "alias of --fasta")
	fs.StringVar(&opt.SequenceID, "id", "", "sequence ID to extract (absent = all records)")

	fs.IntVar(&opt.Start, "start", -1, "slice start, 0-based inclusive (-1 = unset) [-1]")
	fs.IntVar(&opt.End, "end", -1, "slice end, exclusive (-1 = unset) [-1]")

	fs.StringVar(&opt.OutputFile, "out", "", "output file (absent = no file written)")
	fs.StringVar(&opt.OutputFile, "o", "", "alias of --out")
	fs.StringVar(&opt.Format, "format", output.FormatTable, "output format: table | fasta | json [table]")
	fs.StringVar(&opt.Format, "f", output.FormatTable, "alias of --format")
	fs.StringVar(&opt.Delimiter, "delimiter", "\t", "field delimiter for projected ID columns [TAB]")
	fs.StringVar(&opt.Delimiter, "d", "\t", "alias of --delimiter")
	fs.StringVar(&columns, "columns", "", "comma-separated 0-based ID columns (e.g. 0,2)")
	fs.StringVar(&columns, "c", "", "alias of --columns")
	noSeq := false
	fs.BoolVar(&noSeq, "no-sequence", false, "write only ID lines [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when --id is not found [0]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress notices [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.WriteSequence = !noSeq

	var err error
	if opt.Columns, err = parseColumns(columns); err != nil {
		return opt, err
	}
	if opt.FastaFile, err = resolveInput(opt.FastaFile, posArgs); err != nil {
		return opt, err
	}
	return opt, validate(&opt)
}

// parseColumns parses "0,2" into []int{0, 2}. An empty spec is nil (no
// projection); negative indices are rejected.
func parseColumns(spec string) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ",")
	cols := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid --columns entry %q", p)
		}
		if n < 0 {
			return nil, fmt.Errorf("--columns entries must be ≥ 0, got %d", n)
		}
		cols = append(cols, n)
	}
	return cols, nil
}

func resolveInput(fromFlag string, posArgs []string) (string, error) {
	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return "", err
	}
	switch {
	case fromFlag != "" && len(exp) > 0:
		return "", errors.New("--fasta conflicts with a positional input file")
	case len(exp) > 1:
		return "", fmt.Errorf("expected one input file, got %d", len(exp))
	case len(exp) == 1:
		return exp[0], nil
	default:
		return fromFlag, nil
	}
}

func validate(o *Options) error {
	if o.FastaFile == "" {
		return errors.New("an input FASTA file is required")
	}
	if o.Start < -1 {
		return errors.New("--start must be ≥ -1")
	}
	if o.End < -1 {
		return errors.New("--end must be ≥ -1")
	}
	switch o.Format {
	case output.FormatTable, output.FormatFASTA, output.FormatJSON:
	default:
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
