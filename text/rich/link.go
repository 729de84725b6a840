// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import "cogentcore.org/htmltext/text/textpos"

// LinkTag is the annotation tag used for hyperlinks.
const LinkTag = "URL"

// Link is a positioned annotation on a range of the source text,
// carrying the destination of a hyperlink.
type Link struct {
	// Tag is the annotation tag, which is [LinkTag] for hyperlinks.
	Tag string

	// URL is the full URL for the link.
	URL string

	// Range defines the starting and ending positions of the link,
	// in terms of source rune indexes.
	Range textpos.Range
}

// LinkRec represents a hyperlink together with its text label.
type LinkRec struct {
	// Label is the text label for the link.
	Label string

	// URL is the full URL for the link.
	URL string

	// Range defines the starting and ending positions of the link,
	// in terms of source rune indexes.
	Range textpos.Range
}

// AddLink adds a hyperlink annotation to the given URL over the given range.
func (tx *Text) AddLink(url string, rg textpos.Range) *Text {
	tx.Links = append(tx.Links, Link{Tag: LinkTag, URL: url, Range: rg})
	return tx
}

// LinksAt returns all the hyperlinks whose range contains the given
// rune offset, in insertion order. The end of a range is exclusive.
func (tx Text) LinksAt(offset int) []Link {
	var lks []Link
	for _, l := range tx.Links {
		if l.Tag == LinkTag && l.Range.Contains(offset) {
			lks = append(lks, l)
		}
	}
	return lks
}

// GetLinks gets all the hyperlinks across the whole text,
// in insertion order, with their labels.
func (tx Text) GetLinks() []LinkRec {
	var lks []LinkRec
	for _, l := range tx.Links {
		if l.Tag != LinkTag {
			continue
		}
		lks = append(lks, LinkRec{Label: tx.Slice(l.Range), URL: l.URL, Range: l.Range})
	}
	return lks
}
