// Package extract contains the stateless, format-specific extractors for the
// auxiliary text files an OCEAN run leaves next to its main output: photon
// direction descriptors, tridiagonal lanczos dumps and tabular spectra.
//
// Extractors share one contract: given raw text they return named fields or
// a table, and on malformed input they return empty or partial results
// instead of an error, so a single damaged auxiliary file can never take
// down the aggregation of the other polarizations.
package extract
