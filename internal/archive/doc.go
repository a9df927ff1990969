/*
Package archive defines the normalized result graph the parser populates: one
run section per polarization sub-calculation plus a workflow section that
stitches the runs together.

Sections are built through append-only constructors (NewRun, NewMethod, ...)
and are never mutated once the workflow aggregation has read them. Where one
section points at another, the in-memory representation is a plain Go pointer
(a reference, never a copy) and the serialized representation is a canonical
sectionref address, so linkage in the emitted document stays stable for a
given directory snapshot.
*/
package archive
