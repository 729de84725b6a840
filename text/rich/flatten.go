// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"slices"

	"cogentcore.org/htmltext/text/textpos"
)

// Flatten returns non-overlapping runs that cover the whole source in
// position order, split at every run and link boundary. The style of
// each flattened run combines all the runs that cover it: later runs
// take precedence over earlier ones where both specify a field.
func (tx Text) Flatten() []Run {
	n := tx.Len()
	bounds := []int{0, n}
	add := func(rg textpos.Range) {
		if rg.Valid(n) {
			bounds = append(bounds, rg.Start, rg.End)
		}
	}
	for _, r := range tx.Runs {
		add(r.Range)
	}
	for _, l := range tx.Links {
		add(l.Range)
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	var fl []Run
	for i := 0; i+1 < len(bounds); i++ {
		seg := textpos.Range{Start: bounds[i], End: bounds[i+1]}
		if seg.Len() == 0 {
			continue
		}
		var st Style
		for _, r := range tx.Runs {
			if r.Range.Start <= seg.Start && seg.End <= r.Range.End {
				st = r.Style.Fill(st)
			}
		}
		fl = append(fl, Run{Style: st, Range: seg})
	}
	return fl
}
