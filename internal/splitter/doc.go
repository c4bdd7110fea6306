// Package splitter drives the full split pipeline: probe, detect, parse,
// plan, extract.
//
// The stages before extraction run strictly in sequence because each depends
// on the prior stage's complete output. Probe and detection failures abort
// the run; parse warnings and per-track extraction failures do not. The
// four user-visible outcomes are success, partial (some tracks failed),
// degenerate (nothing survived filtering), and failed (nothing could be
// analyzed).
package splitter
