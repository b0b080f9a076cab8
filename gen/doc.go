// Package gen fabricates a plausible stream of website-engagement
// telemetry and keeps a static HTML snapshot in sync with it.
//
// # Reading Guide
//
// Start with these three files to understand the loop:
//   - visitor.go: synthetic visit generation (addresses, handles, log lines)
//   - state.go: the engagement counters and the per-tick Bernoulli trials
//   - scheduler.go: the control loop that sequences log → trials → render → sleep
//
// Supporting pieces:
//   - config.go: the YAML site profile and its defaults
//   - comments.go: the comment pool provider (PDF/plain text, default fallback)
//   - appender.go: append-only access and comment logs
//   - site.go: the full-overwrite HTML renderer
//   - assets.go: local image discovery and placeholder synthesis
//   - rng.go: per-subsystem deterministic random streams
//
// The scheduler is single-threaded by design: one control loop owns the
// state, and "waiting" is a plain timed suspension. Determinism comes from
// PartitionedRNG — the same seed reproduces a run bit for bit (modulo wall
// clock timestamps).
package gen
