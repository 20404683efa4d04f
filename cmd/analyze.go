package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/propfolio/propfolio"
	"github.com/propfolio/propfolio/renderer"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	file    string
	paths   string
	jsonOut bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "run the investment analysis on a property record" }
func (*analyzeCmd) Usage() string {
	return `rea analyze [-f <record>] [-paths <mappings>] [-json]

  Runs the investment analysis matching the record's analysis_type
  (ltr, brrrr, lease_option, multi_family, padsplit) and displays the
  report: cash flow, returns, equity projection and validation warnings.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Property record file (JSON object). '-' reads from stdin.")
	f.StringVar(&c.paths, "paths", "", "Comma-separated field=jsonpath mappings to extract the record from an arbitrary JSON document.")
	f.BoolVar(&c.jsonOut, "json", false, "Output the raw result as JSON instead of a report.")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := decodeRecord(c.file, c.paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading record: %v\n", err)
		return subcommands.ExitFailure
	}

	analysis, err := propfolio.NewAnalysis(rec, propfolio.WithLogger(logger()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating analysis: %v\n", err)
		return subcommands.ExitUsageError
	}

	result := analysis.Analyze()

	if c.jsonOut {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Analysis(result))
	return subcommands.ExitSuccess
}
