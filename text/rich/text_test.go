// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"testing"

	"cogentcore.org/htmltext/text/textpos"
	"github.com/stretchr/testify/assert"
)

func TestLinksAt(t *testing.T) {
	tx := NewText("overlapping links")
	tx.AddLink("first", textpos.Range{Start: 0, End: 5})
	tx.AddLink("second", textpos.Range{Start: 2, End: 8})
	tx.Links = append(tx.Links, Link{Tag: "other", URL: "x", Range: textpos.Range{Start: 0, End: 10}})

	at3 := tx.LinksAt(3)
	if assert.Len(t, at3, 2) {
		assert.Equal(t, "first", at3[0].URL)
		assert.Equal(t, "second", at3[1].URL)
	}
	at5 := tx.LinksAt(5)
	if assert.Len(t, at5, 1) {
		assert.Equal(t, "second", at5[0].URL)
	}
	assert.Empty(t, tx.LinksAt(8))
	assert.Empty(t, tx.LinksAt(-1))
}

func TestGetLinks(t *testing.T) {
	tx := NewText("Click here, ünïcode")
	tx.AddLink("https://example.com", textpos.Range{Start: 6, End: 10})
	tx.AddLink("https://example.org", textpos.Range{Start: 12, End: 19})
	lks := tx.GetLinks()
	if assert.Len(t, lks, 2) {
		assert.Equal(t, "here", lks[0].Label)
		assert.Equal(t, "https://example.com", lks[0].URL)
		assert.Equal(t, "ünïcode", lks[1].Label)
	}
	assert.Equal(t, 19, tx.Len())
}

func TestTextString(t *testing.T) {
	tx := NewText("The lazy fox")
	tx.AddRun(Style{Slant: Italic}, textpos.Range{Start: 4, End: 8})
	tx.AddRun(Style{Weight: Bold}, textpos.Range{Start: 0, End: 3})
	tx.AddLink("https://example.com", textpos.Range{Start: 9, End: 12})

	trg := `[slant:italic]: "lazy"
[weight:bold]: "The"
[link https://example.com]: "fox"
`
	assert.Equal(t, trg, tx.String())
	assert.Equal(t, "fox", tx.Slice(textpos.Range{Start: 9, End: 40}))
}

func TestFlatten(t *testing.T) {
	tx := NewText("abcdefgh")
	tx.AddRun(Style{Weight: Bold, Color: red}, textpos.Range{Start: 0, End: 6})
	tx.AddRun(Style{Color: blue, Slant: Italic}, textpos.Range{Start: 4, End: 8})
	tx.AddLink("u", textpos.Range{Start: 1, End: 2})

	fl := tx.Flatten()
	want := []Run{
		{Style{Weight: Bold, Color: red}, textpos.Range{Start: 0, End: 1}},
		{Style{Weight: Bold, Color: red}, textpos.Range{Start: 1, End: 2}},
		{Style{Weight: Bold, Color: red}, textpos.Range{Start: 2, End: 4}},
		{Style{Weight: Bold, Color: blue, Slant: Italic}, textpos.Range{Start: 4, End: 6}},
		{Style{Color: blue, Slant: Italic}, textpos.Range{Start: 6, End: 8}},
	}
	assert.Equal(t, want, fl)

	assert.Empty(t, NewText("").Flatten())
	plain := NewText("xy").Flatten()
	assert.Equal(t, []Run{{Style{}, textpos.Range{Start: 0, End: 2}}}, plain)
}
