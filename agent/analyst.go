package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/propfolio/propfolio"
	"github.com/propfolio/propfolio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert that owns the conversation and knows how
// to consult the others.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and of solving
			the user's request about real estate deals.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and keep context of your previous questions.

			The user is evaluating rental property investments. Devise a plan of
			questions for the experts and come up with the best response. When an
			expert returns numbers, present them as markdown tables and state the
			assumptions behind them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates an expert grounded in Google Search for market
// context: rents, comps, tax rates, neighborhood trends.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is a market researcher.
		Ask the Researcher for current market data: typical rents, vacancy rates,
		property tax rates, insurance costs, comparable sales, and local trends.
		Ask whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a real estate market researcher. You leverage Google Search to
			ground your assertions about rents, comps, taxes, insurance and market
			trends in verifiable sources. Always report where a figure comes from.
				`}}},
		},
	}
}

// NewAnalyst creates the expert wired to the analysis engine.
func NewAnalyst() *Expert {
	lib := []Function{runAnalysis, loanPayment, amortizationSchedule, priceSweep}

	return &Expert{
		Name: "Analyst",
		Description: `This is the deal Analyst. He runs the financial analysis
		engine on property records: cash flow, cap rate, cash-on-cash, loan
		payments, amortization, equity projection, and price sensitivity sweeps.
		Give him the property figures and he returns computed reports.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a rental property analyst. You never do financial math in
				your head: you assemble a property record and use the available
				tools to compute exact figures.

				A property record is a flat JSON object. The "analysis_type" field
				picks the strategy: ltr, brrrr, lease_option, multi_family, or
				padsplit. Common fields: purchase_price, monthly_rent,
				annual_taxes, annual_insurance, vacancy_rate, management_rate,
				capex_rate, repairs_rate, monthly_hoa, monthly_utilities,
				other_monthly_income, down_payment, closing_costs,
				appreciation_rate, projection_years, initial_loan_amount,
				initial_loan_interest_rate, initial_loan_term.

				Report validation warnings from the tools back to the user.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// record parses the mandatory 'record' string argument of a tool call.
func record(args map[string]any) (propfolio.Record, error) {
	raw, ok := args["record"].(string)
	if !ok {
		return nil, fmt.Errorf("argument 'record' must be a JSON string, got %T", args["record"])
	}
	rec, err := propfolio.DecodeRecord(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("argument 'record' is not a valid property record: %w", err)
	}
	return rec, nil
}

// number reads a float argument, accepting the integer spelling too.
func number(args map[string]any, name string) (float64, bool) {
	switch v := args[name].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

var recordSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The property record as a flat JSON object, serialized to a string.",
}

var runAnalysis = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "run_analysis",
		Description: `run_analysis runs the full investment analysis on a property record
		and returns a markdown report: cash-flow breakdown, return metrics
		(cap rate, cash-on-cash, ROI, DSCR, GRM), equity projection, and any
		validation warnings about the record.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"record": recordSchema,
			},
			Required: []string{"record"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted analysis report.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		rec, err := record(args)
		if err != nil {
			return errorResponse(id, "run_analysis", err)
		}
		analysis, err := propfolio.NewAnalysis(rec)
		if err != nil {
			return errorResponse(id, "run_analysis", err)
		}
		result := analysis.Analyze()
		return &genai.FunctionResponse{
			ID:   id,
			Name: "run_analysis",
			Response: map[string]any{
				"output": renderer.Analysis(result),
			},
		}
	},
}

var loanPayment = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "loan_payment",
		Description: `loan_payment computes the monthly payment of a loan and its split
		between principal and interest for the first period.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount":        {Type: genai.TypeNumber, Description: "The loan principal in dollars."},
				"interest_rate": {Type: genai.TypeNumber, Description: "The annual interest rate in percent, e.g. 4.5."},
				"term_months":   {Type: genai.TypeInteger, Description: "The loan term in months, e.g. 360."},
				"interest_only": {Type: genai.TypeBoolean, Description: "True for an interest-only loan."},
			},
			Required: []string{"amount", "interest_rate", "term_months"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The monthly payment with its principal and interest split.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		loan, err := loanFromArgs(args)
		if err != nil {
			return errorResponse(id, "loan_payment", err)
		}
		p := loan.Payment()
		return &genai.FunctionResponse{
			ID:   id,
			Name: "loan_payment",
			Response: map[string]any{
				"output": fmt.Sprintf("Monthly payment %s (principal %s, interest %s) for %s.",
					p.Total, p.Principal, p.Interest, loan),
			},
		}
	},
}

var amortizationSchedule = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "amortization_schedule",
		Description: `amortization_schedule returns the period-by-period amortization of a
		loan as a markdown table, with payment, principal, interest and
		remaining balance per month.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount":        {Type: genai.TypeNumber, Description: "The loan principal in dollars."},
				"interest_rate": {Type: genai.TypeNumber, Description: "The annual interest rate in percent."},
				"term_months":   {Type: genai.TypeInteger, Description: "The loan term in months."},
				"max_periods":   {Type: genai.TypeInteger, Description: "Limit the schedule to the first N periods. Zero means the full term."},
			},
			Required: []string{"amount", "interest_rate", "term_months"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table of the amortization schedule.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		loan, err := loanFromArgs(args)
		if err != nil {
			return errorResponse(id, "amortization_schedule", err)
		}
		maxPeriods := 0
		if v, ok := number(args, "max_periods"); ok {
			maxPeriods = int(v)
		}
		entries := loan.AmortizationSchedule(maxPeriods)
		return &genai.FunctionResponse{
			ID:   id,
			Name: "amortization_schedule",
			Response: map[string]any{
				"output": renderer.Schedule(loan, entries),
			},
		}
	},
}

var priceSweep = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "price_sweep",
		Description: `price_sweep re-runs the analysis of a property record across a grid
		of purchase prices and reports how cash flow and cash-on-cash react,
		including the highest price that still breaks even.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"record": recordSchema,
				"from":   {Type: genai.TypeNumber, Description: "The lowest purchase price to try, in dollars."},
				"to":     {Type: genai.TypeNumber, Description: "The highest purchase price to try, in dollars."},
				"step":   {Type: genai.TypeNumber, Description: "The price increment between tries, in dollars."},
			},
			Required: []string{"record", "from", "to", "step"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown report of the price sensitivity sweep.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		rec, err := record(args)
		if err != nil {
			return errorResponse(id, "price_sweep", err)
		}
		from, okFrom := number(args, "from")
		to, okTo := number(args, "to")
		step, okStep := number(args, "step")
		if !okFrom || !okTo || !okStep {
			return errorResponse(id, "price_sweep", fmt.Errorf("arguments 'from', 'to' and 'step' must be numbers"))
		}
		report, err := propfolio.PriceSweep(rec, propfolio.M(from), propfolio.M(to), propfolio.M(step))
		if err != nil {
			return errorResponse(id, "price_sweep", err)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "price_sweep",
			Response: map[string]any{
				"output": renderer.Sweep(report),
			},
		}
	},
}

// loanFromArgs builds a LoanDetails from the shared loan tool arguments.
func loanFromArgs(args map[string]any) (propfolio.LoanDetails, error) {
	amount, ok := number(args, "amount")
	if !ok {
		return propfolio.LoanDetails{}, fmt.Errorf("argument 'amount' must be a number, got %T", args["amount"])
	}
	rate, ok := number(args, "interest_rate")
	if !ok {
		return propfolio.LoanDetails{}, fmt.Errorf("argument 'interest_rate' must be a number, got %T", args["interest_rate"])
	}
	term, ok := number(args, "term_months")
	if !ok {
		return propfolio.LoanDetails{}, fmt.Errorf("argument 'term_months' must be a number, got %T", args["term_months"])
	}
	interestOnly, _ := args["interest_only"].(bool)
	return propfolio.NewLoan(propfolio.M(amount), propfolio.Percent(rate), int(term), interestOnly, "")
}
