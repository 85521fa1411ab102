// Package ledgers aggregates an exchange ledger export into per-asset and
// per-trading-pair totals.
//
// The core functionalities include:
//   - Classification: turning each raw export row into a typed, validated
//     entry (deposit, withdrawal, buy or sell) with an exact decimal amount
//     and fee.
//   - Accumulation: folding validated entries into running totals per entry
//     kind and asset, with fees tracked separately from principal amounts.
//   - Trade pairing: correlating the buy and sell legs of a trade execution
//     through their shared reference id, and accumulating totals per
//     (buy asset, sell asset) pair across all paired trades.
//   - Encoding: reading the export as header-keyed CSV records and writing
//     trade totals back out as a fixed six-column CSV.
//
// This package serves as the foundational logic for the `klg` command-line
// tool. Processing is strictly single-pass: the record source is consumed
// once, front to back, and rows that fail classification are counted and
// dropped from every aggregate instead of aborting the run.
package ledgers
