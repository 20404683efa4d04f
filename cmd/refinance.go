package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/propfolio/propfolio"
	"github.com/propfolio/propfolio/renderer"
)

// refinanceCmd holds the flags for the 'refinance' subcommand.
type refinanceCmd struct {
	amount       float64
	rate         float64
	term         int
	paymentsMade int

	newAmount float64
	newRate   float64
	newTerm   int

	closingCosts float64
	noi          float64
}

func (*refinanceCmd) Name() string     { return "refinance" }
func (*refinanceCmd) Synopsis() string { return "compare a loan against a refinance candidate" }
func (*refinanceCmd) Usage() string {
	return `rea refinance -amount <dollars> -rate <percent> -paid <months> -new-amount <dollars> -new-rate <percent> [-closing <dollars>]

  Computes the payment delta of replacing the current loan with a new
  one: monthly savings, payoff balance, cash pulled out, and how many
  months of savings recoup the closing costs.
`
}

func (c *refinanceCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Current loan principal in dollars.")
	f.Float64Var(&c.rate, "rate", 0, "Current loan annual interest rate in percent.")
	f.IntVar(&c.term, "term", 360, "Current loan term in months.")
	f.IntVar(&c.paymentsMade, "paid", 0, "Number of payments already made on the current loan.")
	f.Float64Var(&c.newAmount, "new-amount", 0, "New loan principal in dollars.")
	f.Float64Var(&c.newRate, "new-rate", 0, "New loan annual interest rate in percent.")
	f.IntVar(&c.newTerm, "new-term", 360, "New loan term in months.")
	f.Float64Var(&c.closingCosts, "closing", 0, "Closing costs of the refinance in dollars.")
	f.Float64Var(&c.noi, "noi", 0, "Monthly net operating income, to report the new cash flow.")
}

func (c *refinanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	current, err := propfolio.NewLoan(propfolio.M(c.amount), propfolio.Percent(c.rate), c.term, false, "current")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in current loan: %v\n", err)
		return subcommands.ExitUsageError
	}
	next, err := propfolio.NewLoan(propfolio.M(c.newAmount), propfolio.Percent(c.newRate), c.newTerm, false, "new")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in new loan: %v\n", err)
		return subcommands.ExitUsageError
	}

	analysis, err := propfolio.AnalyzeRefinanceImpact(propfolio.RefinanceInput{
		CurrentLoan:  current,
		PaymentsMade: c.paymentsMade,
		NewLoan:      next,
		ClosingCosts: propfolio.M(c.closingCosts),
		MonthlyNOI:   propfolio.M(c.noi),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Refinance(&analysis))
	return subcommands.ExitSuccess
}
