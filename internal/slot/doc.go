// Package slot implements the ordered bookmark list at the core of hk.
//
// A [List] is a dense, order-significant sequence of absolute file paths.
// Positions are 1-based and contiguous: after any successful mutation the
// entries occupy positions 1..Len() with no gaps, so the list can be
// persisted directly as a JSON array.
//
// # Invariants
//
//   - No path appears twice (single-item adds reject duplicates).
//   - Every mutation either fully succeeds or leaves the list unchanged.
//   - Reordering swaps neighbors only; there is no wraparound at the ends.
//
// # Navigation
//
// [List.Next] and [List.Prev] traverse circularly: stepping past the last
// entry wraps to the first and vice versa. A current path that is not in
// the list falls back to position 1, so navigation always lands somewhere
// as long as the list is non-empty.
package slot
