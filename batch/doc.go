// Package batch runs many door codes through the chain evaluator and
// aggregates the result.
//
// For every code the complexity is its numeric value (the integer formed by
// its digits, "029A" → 29) times the minimum human press count at the
// configured depth. The report total is the sum of complexities.
//
// Concurrency:
//
//   - Codes are independent queries and run in parallel through an
//     errgroup bounded by Options.Workers.
//   - By default each code gets its own Evaluator and Cache, so workers
//     share nothing. WithSharedCache hands every worker the same Cache;
//     its write-once Store keeps that safe.
//   - The first failing code cancels the rest; no partial report is returned.
//
// Errors:
//
//   - ErrEmptyInput:      no codes to run.
//   - ErrNoDigits:        a code has no digits to form its numeric value.
//   - ErrUnknownFormat:   unsupported report format name.
//   - ErrOptionViolation: invalid Option.
//   - chain.ErrInvalidCode and friends propagate, wrapped with the code.
package batch
