// Package contracts solves coding-contract puzzles: small, externally generated
// combinatorial problems that are validated by strict equality and come with a
// limited attempt budget.
//
// What:
//
//   - Catalog maps a puzzle type tag (e.g. "Encryption I: Caesar Cipher") to a
//     pure solver. Every payload is checked against a per-type JSON schema and
//     decoded into fresh Go values, so solving never mutates the caller's data.
//   - Typed kernels (MaxProfit, LZCompress, TwoColoring, …) are exported for
//     direct use; each copies any slice it needs to reorder.
//   - Runner walks every instance a Board reports, attempts each exactly once
//     and produces one report line per instance.
//
// Sentinels:
//
//	Well-formed but degenerate payloads (empty arrays, blocked grids, odd
//	cycles) never error: they yield the type's "no solution" value, which is
//	0, an empty slice or an empty string.
//
// Errors:
//
//   - ErrNoSolver:        the type tag has no registered solver.
//   - ErrBadPayload:      the payload fails its schema or cannot be decoded.
//   - ErrDuplicateSolver: Register was called twice for the same type tag.
package contracts
