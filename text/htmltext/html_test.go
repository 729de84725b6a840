// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"image/color"
	"testing"

	"cogentcore.org/htmltext/text/spans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 255, A: 255}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		plain string
		spans []spans.Span
	}{
		{"plain", "just text", "just text", nil},
		{"italic", "The <i>lazy</i> fox", "The lazy fox",
			[]spans.Span{{Kind: spans.StyleSpan, Typeface: spans.TypefaceItalic, Start: 4, End: 8}}},
		{"link", `Click <a href="https://example.com">here</a>`, "Click here",
			[]spans.Span{{Kind: spans.URL, URL: "https://example.com", Start: 6, End: 10}}},
		{"anchor without href", `<a name="top">top</a>`, "top", nil},
		{"closing order", "<b>bold <i>both</i></b>", "bold both",
			[]spans.Span{
				{Kind: spans.StyleSpan, Typeface: spans.TypefaceItalic, Start: 5, End: 9},
				{Kind: spans.StyleSpan, Typeface: spans.TypefaceBold, Start: 0, End: 9},
			}},
		{"decorations", "<u>u</u><s>s</s><del>d</del>", "usd",
			[]spans.Span{
				{Kind: spans.Underline, Start: 0, End: 1},
				{Kind: spans.Strikethrough, Start: 1, End: 2},
				{Kind: spans.Strikethrough, Start: 2, End: 3},
			}},
		{"scripts", "x<sup>2</sup>y<sub>i</sub>", "x2yi",
			[]spans.Span{
				{Kind: spans.Superscript, Start: 1, End: 2},
				{Kind: spans.Subscript, Start: 3, End: 4},
			}},
		{"sizes", "<big>B</big><small>s</small>", "Bs",
			[]spans.Span{
				{Kind: spans.RelativeSize, Scale: 1.25, Start: 0, End: 1},
				{Kind: spans.RelativeSize, Scale: 0.8, Start: 1, End: 2},
			}},
		{"heading", "<h1>Title</h1>text", "Title\ntext",
			[]spans.Span{
				{Kind: spans.StyleSpan, Typeface: spans.TypefaceBold, Start: 0, End: 5},
				{Kind: spans.RelativeSize, Scale: 1.5, Start: 0, End: 5},
			}},
		{"font color", `<font color="red">r</font>`, "r",
			[]spans.Span{{Kind: spans.ForegroundColor, Color: red, Start: 0, End: 1}}},
		{"style attribute", `<span style="color: #ff0000; text-decoration: underline">r</span>`, "r",
			[]spans.Span{
				{Kind: spans.ForegroundColor, Color: red, Start: 0, End: 1},
				{Kind: spans.Underline, Start: 0, End: 1},
			}},
		{"background", `<span style="background-color:#f00">r</span>`, "r",
			[]spans.Span{{Kind: spans.BackgroundColor, Color: red, Start: 0, End: 1}}},
		{"code", "<code>x</code>", "x",
			[]spans.Span{{Kind: spans.Typeface, Family: "monospace", Start: 0, End: 1}}},
		{"list", "<ul><li>one</li><li>two</li></ul>", "one\ntwo",
			[]spans.Span{
				{Kind: spans.Bullet, Start: 0, End: 3},
				{Kind: spans.Bullet, Start: 4, End: 7},
			}},
		{"quote", "said <blockquote>hi</blockquote>", "said\nhi",
			[]spans.Span{{Kind: spans.Quote, Start: 5, End: 7}}},
		{"image", `a<img src="x.png">b`, "a￼b",
			[]spans.Span{{Kind: spans.Image, URL: "x.png", Start: 1, End: 2}}},
		{"empty element", "a<b></b>b", "ab", nil},
		{"unclosed", "<b>x", "x",
			[]spans.Span{{Kind: spans.StyleSpan, Typeface: spans.TypefaceBold, Start: 0, End: 1}}},
		{"stray close", "a</i>b", "ab", nil},
		{"unknown tag", "<blink>x</blink>", "x", nil},
		{"script", "a<script>var x = 1</script>b", "ab", nil},
		{"nfc", "<b>e&#x301;</b>", "é",
			[]spans.Span{{Kind: spans.StyleSpan, Typeface: spans.TypefaceBold, Start: 0, End: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, sp, err := Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, plain)
			assert.Equal(t, tt.spans, sp)
		})
	}
}

func TestWhitespace(t *testing.T) {
	plain, _, err := Parse("a  \n\t b")
	require.NoError(t, err)
	assert.Equal(t, "a b", plain)

	plain, _, err = Parse("<p>one</p>\n  <p>two</p>")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", plain)

	plain, _, err = Parse("<pre>a  b\n c</pre>")
	require.NoError(t, err)
	assert.Equal(t, "a  b\n c", plain)
}

func TestNormalize(t *testing.T) {
	plain, _, err := Parse("cafe\u0301")
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9", plain)

	plain, _, err = Parse("cafe&#769;")
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9", plain)

	// a combining mark after a tag is not composed with its '>'
	plain, sp, err := Parse("<b>x</b>\u0338")
	require.NoError(t, err)
	assert.Equal(t, "x\u0338", plain)
	assert.Equal(t, []spans.Span{{Kind: spans.StyleSpan, Typeface: spans.TypefaceBold, Start: 0, End: 1}}, sp)
}

func TestBadColors(t *testing.T) {
	for _, src := range []string{
		`<font color="notacolor">r</font>`,
		`<font color="none">r</font>`,
		`<span style="color: #zz; background-color: none">r</span>`,
	} {
		plain, sp, err := Parse(src)
		require.NoError(t, err, src)
		assert.Equal(t, "r", plain, src)
		assert.Empty(t, sp, src)
	}
}

func TestBreaks(t *testing.T) {
	plain, _, err := Parse("a<br>b<br/>c")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc", plain)

	plain, sp, err := Parse("<b>a<br></b><br>")
	require.NoError(t, err)
	assert.Equal(t, "a", plain)
	assert.Equal(t, []spans.Span{{Kind: spans.StyleSpan, Typeface: spans.TypefaceBold, Start: 0, End: 1}}, sp)
}

func TestHTMLToRich(t *testing.T) {
	tx, err := HTMLToRich("The <i>lazy</i> fox", spans.DefaultTable())
	require.NoError(t, err)
	assert.Equal(t, "[slant:italic]: \"lazy\"\n", tx.String())

	tx, err = HTMLToRich(`The <a href="https://example.com">link</a> and`, spans.DefaultTable())
	require.NoError(t, err)
	trg := `[deco:underline color:#1A73E8FF]: "link"
[link https://example.com]: "link"
`
	assert.Equal(t, trg, tx.String())
}

func TestMarkdown(t *testing.T) {
	plain, sp, err := ParseMarkdown("Some **bold** and [a link](https://x.org)")
	require.NoError(t, err)
	assert.Equal(t, "Some bold and a link", plain)
	assert.Equal(t, []spans.Span{
		{Kind: spans.StyleSpan, Typeface: spans.TypefaceBold, Start: 5, End: 9},
		{Kind: spans.URL, URL: "https://x.org", Start: 14, End: 20},
	}, sp)

	tx, err := MarkdownToRich("*it*", spans.DefaultTable())
	require.NoError(t, err)
	assert.Equal(t, "[slant:italic]: \"it\"\n", tx.String())
}
