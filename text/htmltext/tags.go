// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"strings"

	"cogentcore.org/htmltext/base/errors"
	"cogentcore.org/htmltext/colors"
	"cogentcore.org/htmltext/text/spans"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// headingSizes are the relative font sizes of <h1> to <h6>.
var headingSizes = [6]float32{1.5, 1.4, 1.3, 1.2, 1.1, 1.0}

// tagSpans returns the spans for an element with the given tag and
// attributes, with their ranges to be set when it is closed.
func tagSpans(tag string, attrs []html.Attribute) []spans.Span {
	var sp []spans.Span
	add := func(s spans.Span) { sp = append(sp, s) }
	switch tag {
	case "b", "strong":
		add(spans.Span{Kind: spans.StyleSpan, Typeface: spans.TypefaceBold})
	case "i", "em", "cite", "dfn", "var":
		add(spans.Span{Kind: spans.StyleSpan, Typeface: spans.TypefaceItalic})
	case "u", "ins":
		add(spans.Span{Kind: spans.Underline})
	case "s", "strike", "del":
		add(spans.Span{Kind: spans.Strikethrough})
	case "sup":
		add(spans.Span{Kind: spans.Superscript})
	case "sub":
		add(spans.Span{Kind: spans.Subscript})
	case "big":
		add(spans.Span{Kind: spans.RelativeSize, Scale: 1.25})
	case "small":
		add(spans.Span{Kind: spans.RelativeSize, Scale: 0.8})
	case "h1", "h2", "h3", "h4", "h5", "h6":
		add(spans.Span{Kind: spans.StyleSpan, Typeface: spans.TypefaceBold})
		add(spans.Span{Kind: spans.RelativeSize, Scale: headingSizes[tag[1]-'1']})
	case "tt", "code", "kbd", "samp":
		add(spans.Span{Kind: spans.Typeface, Family: "monospace"})
	case "blockquote":
		add(spans.Span{Kind: spans.Quote})
	case "li":
		add(spans.Span{Kind: spans.Bullet})
	case "a":
		if href, ok := attr(attrs, "href"); ok {
			add(spans.Span{Kind: spans.URL, URL: href})
		}
	case "font":
		if clr, ok := attr(attrs, "color"); ok {
			if c := errors.Log1(colors.FromString(clr)); !colors.IsNil(c) {
				add(spans.Span{Kind: spans.ForegroundColor, Color: c})
			}
		}
		if face, ok := attr(attrs, "face"); ok {
			add(spans.Span{Kind: spans.Typeface, Family: face})
		}
	}
	if style, ok := attr(attrs, "style"); ok {
		sp = append(sp, styleSpans(style)...)
	}
	return sp
}

// styleSpans returns the spans for the CSS declarations of a style attribute.
// Only color, background color, and text decoration are supported.
func styleSpans(style string) []spans.Span {
	style = strings.TrimSpace(style)
	if style == "" {
		return nil
	}
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if errors.Log(err) != nil {
		return nil
	}
	var sp []spans.Span
	for _, d := range decls {
		val := strings.TrimSpace(d.Value)
		switch strings.ToLower(d.Property) {
		case "color":
			if c := errors.Log1(colors.FromString(val)); !colors.IsNil(c) {
				sp = append(sp, spans.Span{Kind: spans.ForegroundColor, Color: c})
			}
		case "background-color", "background":
			if c := errors.Log1(colors.FromString(val)); !colors.IsNil(c) {
				sp = append(sp, spans.Span{Kind: spans.BackgroundColor, Color: c})
			}
		case "text-decoration", "text-decoration-line":
			for _, f := range strings.Fields(strings.ToLower(val)) {
				switch f {
				case "underline":
					sp = append(sp, spans.Span{Kind: spans.Underline})
				case "line-through":
					sp = append(sp, spans.Span{Kind: spans.Strikethrough})
				}
			}
		}
	}
	return sp
}

// attr returns the value of the attribute with the given key.
func attr(attrs []html.Attribute, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// isBlock returns whether the given tag starts on a new line.
func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "li", "ul", "ol", "blockquote", "pre", "table", "tr",
		"h1", "h2", "h3", "h4", "h5", "h6", "section", "article", "header", "footer",
		"dl", "dt", "dd", "figure", "hr", "body", "html":
		return true
	}
	return false
}

// isVoid returns whether the given tag never has content.
func isVoid(tag string) bool {
	switch tag {
	case "br", "hr", "img", "input", "meta", "link", "wbr", "col", "area", "source":
		return true
	}
	return false
}
