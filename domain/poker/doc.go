// Package poker implements the domain logic for the eldritch hold'em
// variant: hand evaluation, the chip ledger, the two-pass betting
// protocol, the scripted actor policy, the sanity-driven anomaly engine
// and round resolution.
//
// # Core Types
//
// Actor: one seat at the table, interactive or scripted, carrying a hand,
// an active flag and a sanity level.
//
// Ledger: per-actor balances plus the shared pot; the total is conserved
// across every bet and award.
//
// Coordinator: runs one betting stage as an explicit state machine with
// asymmetric turn order (interactive opening, scripted responses,
// interactive closing reaction).
//
// EventEngine: rolls five independent anomaly effects between stages,
// scaled by the highest sanity at the table.
//
// # Game Flow
//
// A round progresses pre-flop → flop → turn → river, with anomaly rolls
// interleaved, and ends with win resolution or an instant win when only
// one side of the table remains.
//
// # Known Limitations
//
// The evaluator requires all cards to share a suit for a flush and
// performs no kicker comparison; win resolution breaks ties in favor of
// the first actor in enumeration order. Both are preserved deliberately.
package poker
