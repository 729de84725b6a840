// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rich provides the styled text representation produced
// from HTML markup: a plain source string with [Style] runs over
// rune ranges of it, and [Link] annotations for hyperlinks.
package rich

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"cogentcore.org/htmltext/text/textpos"
)

// Text is the rich text representation: the plain Source string,
// the style runs that apply to ranges of it, and the link annotations.
// All ranges are in rune indexes into Source. Runs and Links are in
// the order they were added, not sorted by position; overlapping
// runs and links are all retained.
type Text struct {

	// Source is the plain text, without any markup.
	Source string

	// Runs are the style runs, in insertion order.
	Runs []Run

	// Links are the link annotations, in insertion order.
	Links []Link
}

// Run is a [Style] applied to a range of the source text.
type Run struct {
	Style Style
	Range textpos.Range
}

// NewText returns a new [Text] for the given plain source string.
func NewText(src string) Text {
	return Text{Source: src}
}

// Len returns the number of runes in the source.
func (tx Text) Len() int {
	return utf8.RuneCountInString(tx.Source)
}

// AddRun adds a style run over the given range.
func (tx *Text) AddRun(s Style, rg textpos.Range) *Text {
	tx.Runs = append(tx.Runs, Run{Style: s, Range: rg})
	return tx
}

// Slice returns the source text within the given rune range,
// clamped to the source.
func (tx Text) Slice(rg textpos.Range) string {
	rs := []rune(tx.Source)
	st := min(max(rg.Start, 0), len(rs))
	ed := min(max(rg.End, st), len(rs))
	return string(rs[st:ed])
}

// String returns a line per run and per link, in insertion order,
// for debugging and testing.
func (tx Text) String() string {
	var b strings.Builder
	for _, r := range tx.Runs {
		b.WriteString("[" + r.Style.String() + "]: " + strconv.Quote(tx.Slice(r.Range)) + "\n")
	}
	for _, l := range tx.Links {
		b.WriteString("[link " + l.URL + "]: " + strconv.Quote(tx.Slice(l.Range)) + "\n")
	}
	return b.String()
}

// Disabled returns a copy of the text with the [Style.Disabled]
// version of every run style.
func (tx Text) Disabled() Text {
	runs := make([]Run, len(tx.Runs))
	for i, r := range tx.Runs {
		runs[i] = Run{Style: r.Style.Disabled(), Range: r.Range}
	}
	tx.Runs = runs
	return tx
}
