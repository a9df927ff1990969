/*
Package parser is the aggregation core: it cross-references the main OCEAN
JSON output with the per-polarization auxiliary files found next to it and
populates the result archive.

Construction is strictly ordered and single-threaded. The spectra files
discovered in lexical filename order define the polarization keys; one child
run is built per key (structure, photon descriptor, methodology,
calculation), and a final workflow entry links every child as a task. Errors
local to one child never abort the siblings or the workflow step; only a
failure to load the main document is fatal.
*/
package parser
