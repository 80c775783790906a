// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"faget/internal/version"
)

// InstallUsage installs the full help text on fs.
func InstallUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – extract FASTA records by ID\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintf(out, "Usage: %s [flags] <fasta-file>\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --fasta file            Input FASTA file (or positional) [*]")
		fmt.Fprintln(out, "      --id string             Sequence ID to extract (absent = all records)")

		fmt.Fprintln(out, "\nSlicing (with --id only):")
		fmt.Fprintf(out, "      --start int             Slice start, 0-based inclusive (-1 = unset) [%s]\n", def("start"))
		fmt.Fprintf(out, "      --end int               Slice end, exclusive (-1 = unset) [%s]\n", def("end"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --out file              Output file (absent = no file written)")
		fmt.Fprintf(out, "  -f, --format string         Output format: table | fasta | json [%s]\n", def("format"))
		fmt.Fprintln(out, "  -d, --delimiter string      Field delimiter for projected ID columns [TAB]")
		fmt.Fprintln(out, "  -c, --columns string        Comma-separated 0-based ID columns (e.g. 0,2)")
		fmt.Fprintf(out, "      --no-sequence           Write only ID lines [%s]\n", def("no-sequence"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when --id is not found [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress notices [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
