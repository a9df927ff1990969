package sectionref

// Segment represents a single component of an address path, e.g., `name[index]`.
type Segment struct {
	Name  string
	Index int // -1 indicates no index is present.
}

// NewSegment creates a new path segment without an index.
func NewSegment(name string) Segment {
	return Segment{Name: name, Index: -1}
}

// NewSegmentWithIndex creates a new path segment that includes an index.
func NewSegmentWithIndex(name string, index int) Segment {
	return Segment{Name: name, Index: index}
}

// HasIndex returns true if the segment carries an explicit index.
func (s Segment) HasIndex() bool {
	return s.Index != -1
}

// Address is the structured representation of a section location inside the
// archive, modeled as a path broken into segments.
type Address struct {
	Path []Segment
}

// Child returns a new address extending this one by an unindexed segment.
func (a Address) Child(name string) Address {
	return a.child(NewSegment(name))
}

// ChildAt returns a new address extending this one by an indexed segment.
func (a Address) ChildAt(name string, index int) Address {
	return a.child(NewSegmentWithIndex(name, index))
}

func (a Address) child(seg Segment) Address {
	path := make([]Segment, 0, len(a.Path)+1)
	path = append(path, a.Path...)
	path = append(path, seg)
	return Address{Path: path}
}
