// Package edgelist reads the delimited city-distance file the kruskals command
// consumes and turns it into the dense ids and core.Edge values the MST code
// works on.
//
// Format
//
// One record per line. The first field names a city; it is followed by one or
// more (neighbour, distance) pairs, all sharing that first city:
//
//	Dallas,Austin,195,Houston,239
//	Austin,Houston,162
//
// yields the edges Dallas–Austin (195), Dallas–Houston (239) and
// Austin–Houston (162). Labels are interned into a core.Index in first-seen
// order, so ids are 0..n-1. Fields are trimmed, blank lines and lines starting
// with '#' are skipped, and fields may be quoted when a label contains the
// delimiter.
//
// Errors carry the offending line number and remain comparable through
// errors.Cause: ErrShortRecord, ErrMissingWeight, ErrBadWeight,
// ErrNegativeWeight and core.ErrEmptyLabel.
package edgelist
