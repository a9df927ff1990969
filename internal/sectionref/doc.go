/*
Package sectionref provides a structured, type-safe representation for
addresses of sections in the result archive, based on the canonical format
`path`.

The format is a dot-separated sequence of segments, e.g.,
`run[1].method[0].photon`. Addresses are what the workflow entry stores in
place of owned copies: a task's input/output links reference child-run
sections by address, so the linkage survives serialization and is stable
for a given directory snapshot.
*/
package sectionref
