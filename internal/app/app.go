// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"faget/internal/appcore"
	"faget/internal/cli"
	"faget/internal/version"
	"faget/internal/writers"
)

// Run parses argv, runs the pipeline, and returns the process exit
// code. All output goes through the supplied writers so tests can
// capture it.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("faget")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.InstallUsage(fs, "faget")
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.InstallUsage(fs, "faget")
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "faget version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	code := appcore.Run(appcore.Options{
		FastaFile:       opts.FastaFile,
		SequenceID:      opts.SequenceID,
		Start:           opts.Start,
		End:             opts.End,
		OutputFile:      opts.OutputFile,
		Format:          opts.Format,
		Delimiter:       opts.Delimiter,
		Columns:         opts.Columns,
		WriteSequence:   opts.WriteSequence,
		NoMatchExitCode: opts.NoMatchExitCode,
		Quiet:           opts.Quiet,
	}, outw, stderr)
	return flushCode(outw, stderr, code)
}

// flushCode flushes buffered stdout and folds flush failures into the
// exit code. A broken pipe downstream is not an error.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
