// Package cmd implements the CLI application to analyze rental property
// investments.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/propfolio/propfolio"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&sweepCmd{}, "analysis")

	c.Register(&paymentCmd{}, "loans")
	c.Register(&scheduleCmd{}, "loans")
	c.Register(&balloonCmd{}, "loans")
	c.Register(&refinanceCmd{}, "loans")
	c.Register(&leaseOptionCmd{}, "loans")

	c.Register(&assistCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var verbose = flag.Bool("v", false, "log calculation faults and their fallback values")

// logger builds the application logger honoring the -v flag.
func logger() *zap.Logger {
	if !*verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return zap.NewNop()
	}
	return log
}

// decodeRecord reads a property record from the given file, or from stdin
// when the filename is "-". When paths is non-empty it holds a
// comma-separated list of field=jsonpath mappings used to extract the record
// fields out of an arbitrary JSON document.
func decodeRecord(filename, paths string) (propfolio.Record, error) {
	r := os.Stdin
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("could not open record file %q: %w", filename, err)
		}
		defer f.Close()
		r = f
	}
	if paths == "" {
		return propfolio.DecodeRecord(r)
	}
	mapping, err := parsePaths(paths)
	if err != nil {
		return nil, err
	}
	return propfolio.ExtractRecord(r, mapping)
}

// parsePaths parses a comma-separated list of field=jsonpath mappings.
func parsePaths(paths string) (map[string]string, error) {
	mapping := make(map[string]string)
	for _, pair := range strings.Split(paths, ",") {
		field, path, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid path mapping %q, expected field=jsonpath", pair)
		}
		mapping[strings.TrimSpace(field)] = strings.TrimSpace(path)
	}
	return mapping, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
