// Package pipeline runs the locator over one or more input files.
//
// Each input is loaded, decoded and searched independently. Inputs are
// processed concurrently with errgroup, bounded by the configured
// concurrency, and outcomes are returned in input order so that the
// report reads the same no matter which file finished first.
//
// A file that cannot be read or decoded is fatal: the first such error
// cancels the remaining work and Run returns no outcomes at all. A file
// that simply does not contain the pattern is not an error; its Outcome
// has Result.Found set to false.
package pipeline
