// Package extract turns raw completion-provider output into a structured
// [Value] tree.
//
// Providers are asked to answer with pure JSON but routinely wrap the object
// in prose ("Sure! Here is your JSON: ..."). [Extract] therefore works in two
// stages: a strict parse of the whole text, then a bounded heuristic that
// carves the first object-shaped span out of the prose and strict-parses it.
// Neither stage guesses at structure; when both fail the caller gets
// [ErrNotJSON] and decides what to show.
//
// An optional third stage, enabled with [WithRepair], runs the candidate
// through the jsonrepair library before giving up. [ParseAs] offers the same
// strict-then-repair treatment for callers expecting a concrete Go type.
//
// [Value] is a tagged union (null, bool, number, string, mapping, sequence)
// that preserves mapping key order, which downstream rendering depends on.
// Values are immutable once produced.
package extract
