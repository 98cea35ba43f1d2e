// Package loc carries opaque source-position tokens through the AST and
// the semantic queries so callers can turn a failed query into a
// user-facing diagnostic without this module knowing anything about
// files or line/column formatting.
package loc

import "strconv"

// Location is an opaque position token. The semantic queries never
// interpret its fields beyond equality and zero-check; within this
// package String formats them and Range.Contains compares line numbers.
type Location struct {
	File   string
	Line   int
	Column int
}

// Zero reports whether l is the unset location.
func (l Location) Zero() bool {
	return l == Location{}
}

func (l Location) String() string {
	if l.Zero() {
		return "<unknown>"
	}
	if l.Column == 0 {
		return l.File + ":" + strconv.Itoa(l.Line)
	}
	return l.File + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// Range is the first/last token locations a node spans. Every node's
// range must enclose the range of each of its children.
type Range struct {
	Start Location
	End   Location
}

func NewRange(start, end Location) Range {
	return Range{Start: start, End: end}
}

// Contains reports whether r fully encloses inner, comparing only the
// Start/End line numbers (callers that need column-accurate
// containment should compare Start/End directly). When both Start
// locations name a file and the files differ, it reports true without
// comparing lines.
func (r Range) Contains(inner Range) bool {
	if r.Start.File != "" && inner.Start.File != "" && r.Start.File != inner.Start.File {
		return true
	}
	return r.Start.Line <= inner.Start.Line && inner.End.Line <= r.End.Line
}
