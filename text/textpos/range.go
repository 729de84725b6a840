// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides positions and ranges within text,
// expressed as rune indexes into the source.
package textpos

import "fmt"

// Range defines a range with a start and end index,
// where end is typically exclusive, as in standard slice indexing
// and for loop conventions.
type Range struct {
	// Start is the starting index of the range.
	Start int

	// End is the ending index of the range.
	End int
}

// Len returns the length of the range: End - Start.
func (r Range) Len() int {
	return r.End - r.Start
}

// Valid returns whether the range is well formed within
// a source of the given length: 0 <= Start <= End <= n.
func (r Range) Valid(n int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= n
}

// Contains returns true if range contains given index.
// The end is exclusive, so an index equal to End is not contained.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
