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

// loanFlags are the flags shared by the loan subcommands.
type loanFlags struct {
	amount       float64
	rate         float64
	term         int
	interestOnly bool
	name         string
}

func (l *loanFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&l.amount, "amount", 0, "Loan principal in dollars.")
	f.Float64Var(&l.rate, "rate", 0, "Annual interest rate in percent, e.g. 4.5.")
	f.IntVar(&l.term, "term", 360, "Loan term in months.")
	f.BoolVar(&l.interestOnly, "interest-only", false, "Interest-only loan.")
	f.StringVar(&l.name, "name", "", "Loan name, for display.")
}

func (l *loanFlags) Loan() (propfolio.LoanDetails, error) {
	return propfolio.NewLoan(propfolio.M(l.amount), propfolio.Percent(l.rate), l.term, l.interestOnly, l.name)
}

// paymentCmd holds the flags for the 'payment' subcommand.
type paymentCmd struct {
	loanFlags
}

func (*paymentCmd) Name() string     { return "payment" }
func (*paymentCmd) Synopsis() string { return "compute the monthly payment of a loan" }
func (*paymentCmd) Usage() string {
	return `rea payment -amount <dollars> -rate <percent> [-term <months>] [-interest-only]

  Computes the monthly payment and its first-period split between
  principal and interest.
`
}

func (c *paymentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loan, err := c.Loan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p := loan.Payment()
	fmt.Printf("%s\n  payment:   %s\n  principal: %s\n  interest:  %s\n", loan, p.Total, p.Principal, p.Interest)
	return subcommands.ExitSuccess
}

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	loanFlags
	maxPeriods int
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "display the amortization schedule of a loan" }
func (*scheduleCmd) Usage() string {
	return `rea schedule -amount <dollars> -rate <percent> [-term <months>] [-n <periods>]

  Displays the period-by-period amortization table of the loan.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	c.loanFlags.SetFlags(f)
	f.IntVar(&c.maxPeriods, "n", 0, "Limit the schedule to the first n periods. 0 displays the full term.")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loan, err := c.Loan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	entries := loan.AmortizationSchedule(c.maxPeriods)
	printMarkdown(renderer.Schedule(loan, entries))
	return subcommands.ExitSuccess
}

// balloonCmd holds the flags for the 'balloon' subcommand.
type balloonCmd struct {
	loanFlags
	month int
}

func (*balloonCmd) Name() string     { return "balloon" }
func (*balloonCmd) Synopsis() string { return "compute the balance due at a balloon month" }
func (*balloonCmd) Usage() string {
	return `rea balloon -amount <dollars> -rate <percent> -month <month> [-term <months>]

  Computes the remaining balance due when the loan balloons at the given
  month, along with what has been paid up to that point.
`
}

func (c *balloonCmd) SetFlags(f *flag.FlagSet) {
	c.loanFlags.SetFlags(f)
	f.IntVar(&c.month, "month", 0, "Month at which the loan balloons.")
}

func (c *balloonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loan, err := c.Loan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	analysis, err := propfolio.AnalyzeBalloon(loan, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.Balloon(&analysis))
	return subcommands.ExitSuccess
}
