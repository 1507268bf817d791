// Package sim runs gravitational simulations over a body catalog and
// answers trajectory queries about the results.
//
// A [Simulator] owns at most one result set at a time. Simulate is a
// blocking, single-pass computation; a rerun replaces the stored result
// only after the new integration fully succeeds, so a failed rerun never
// leaves the simulator without data.
package sim
