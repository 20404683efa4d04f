// Package propfolio provides the financial calculation engine behind a
// real-estate investment portfolio tracker. It is designed as a pure
// computation layer: callers feed it a flat record of property data and get
// back a fully computed analysis, leaving persistence and presentation to
// outer layers.
//
// The core functionalities include:
//   - Exact Money Arithmetic: a fixed-point Money value type backed by
//     decimal arithmetic, so no cent is ever lost to binary floating point.
//   - Loan Mathematics: amortized, interest-only and zero-interest payment
//     calculation, remaining balances, and full amortization schedules.
//   - Investment Metrics: ROI, cap rate, cash-on-cash return, DSCR, gross
//     rent multiplier, breakeven occupancy, and multi-year equity
//     projections.
//   - Composite Calculators: detailed cash-flow breakdowns, balloon-payment
//     analysis, lease-option economics, and refinance impact.
//   - Analysis Strategies: five property strategies (long-term rental,
//     BRRRR, lease option, multi-family, PadSplit room rental) sharing a
//     common Analysis contract and selected by a single factory.
//   - Accumulating Validation: every problem with an input record is
//     reported in one pass, and an analysis still produces best-effort
//     results for whatever could be computed.
//
// This package serves as the foundational logic for the `rea` command-line
// tool, ensuring that every report is derived from a single calculation
// engine.
package propfolio
