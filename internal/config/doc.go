// Package config defines the typed model of the main OCEAN JSON output
// document, along with the Loader interface for reading it from disk.
//
// The config.Model is read-only after load and is the single source of truth
// for the parser: every child run reads the same instance without
// synchronization, and no component mutates it. Optional keys are modeled as
// pointers or nil slices so that absence stays distinguishable from a genuine
// zero value. The concrete JSON implementation lives in the jsonconf package.
package config
