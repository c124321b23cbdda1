// Package metrics is an append-only, capacity- and age-bounded local
// record of capability, threshold, decision, FPS, and event data.
//
// The store exists for diagnostics; rendering decisions never depend on
// it. Every write prunes expired and excess records (oldest first) and
// persists the collection through a pluggable backend. Storage failures
// degrade to a logged warning and a skipped write, never an error on
// the render path.
package metrics
