// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spans

//go:generate core generate

// Kinds are the kinds of markup spans produced by the HTML parser.
// The kinds up to and including RelativeSize each have a style in a
// [Table]; StyleSpan resolves through its [TypefaceStyles] selector;
// the remaining kinds have no style and are dropped on conversion.
type Kinds int32 //enums:enum -transform kebab

const (
	// Normal is upright, normal weight text.
	Normal Kinds = iota

	// Bold is bold text.
	Bold

	// Italic is italic text.
	Italic

	// BoldItalic is bold italic text.
	BoldItalic

	// Underline is underlined text.
	Underline

	// Strikethrough is text with a line through it.
	Strikethrough

	// URL is a hyperlink, whose destination is in [Span.URL].
	URL

	// Subscript is text lowered below the baseline.
	Subscript

	// Superscript is text raised above the baseline.
	Superscript

	// ForegroundColor is text with the color in [Span.Color].
	ForegroundColor

	// BackgroundColor is text with the background color in [Span.Color].
	BackgroundColor

	// ScaleX is horizontally scaled text, by [Span.Scale].
	ScaleX

	// RelativeSize is text sized relative to its surroundings, by [Span.Scale].
	RelativeSize

	// StyleSpan is a typeface style span, whose style is selected
	// by [Span.Typeface].
	StyleSpan

	// Typeface is a font family span, such as monospace for <tt>.
	Typeface

	// Quote is a block quote.
	Quote

	// Bullet is a list item bullet.
	Bullet

	// Image is an inline image, whose source is in [Span.URL].
	Image
)

// TypefaceStyles select the style of a [StyleSpan].
// Values other than those defined here resolve as TypefaceNormal.
type TypefaceStyles int32 //enums:enum -transform kebab -trim-prefix Typeface

const (
	// TypefaceNormal is upright, normal weight text.
	TypefaceNormal TypefaceStyles = iota

	// TypefaceBold is bold text.
	TypefaceBold

	// TypefaceItalic is italic text.
	TypefaceItalic

	// TypefaceBoldItalic is bold italic text.
	TypefaceBoldItalic
)
