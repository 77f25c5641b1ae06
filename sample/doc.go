// Package sample draws the random values used by the proof engine from an
// injected source.
//
// Every function takes an [io.Reader] instead of reaching for a global
// generator. Production callers pass crypto/rand.Reader; tests pass a
// seeded stream to make protocol runs reproducible.
//
// Failures of the source are reported as [ErrRandomGeneration]. Nothing in
// this package retries beyond the bounded rejection loops needed for
// uniform sampling; callers decide whether to draw again.
package sample
