// Package dividend turns a personal brokerage transaction export (one xlsx
// workbook, one sheet per year) into dividend-income analytics.
//
// The core functionalities include:
//   - Workbook Loading: Reading a multi-sheet export where each sheet name is
//     a year, and unioning all sheets into one flat list of raw transactions.
//   - Ledger Normalization: Filtering raw rows down to dividend deposits,
//     applying documented defaults for missing fields, and computing pre-tax
//     and post-tax amounts per the currency rule of the export.
//   - Aggregation: A set of pure report builders over the normalized ledger:
//     monthly income series, per-holding and per-account calendars,
//     owner/account drill-downs, year-over-year growth, and progress toward a
//     fixed early-retirement income goal.
//
// The ledger is rebuilt wholesale from a workbook and is immutable afterwards;
// every report builder is a pure function of the ledger and its selection
// parameters, so independent reports may be computed concurrently.
//
// This package serves as the foundational logic for the `dvd` command-line
// tool, which renders the reports as markdown. Amounts leave this package as
// raw numbers; all formatting belongs to the presentation layer.
package dividend
