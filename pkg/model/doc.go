// Package model re-exports the survey data model: variables with their
// code→label legends, the parsed dataset, and the frequency tables the
// renderers consume. The implementations live in internal/model; this
// package keeps the public API stable while internals evolve.
package model
