// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

//go:generate core generate

// Weights are the font weights, from thin to black.
// The zero value WeightUnset means the weight is not specified.
type Weights int32 //enums:enum -transform kebab -trim-prefix Weight

const (
	// WeightUnset means no weight is specified, so it is inherited.
	WeightUnset Weights = iota

	// Thin weight (100).
	Thin

	// ExtraLight weight (200).
	ExtraLight

	// Light weight (300).
	Light

	// Normal weight (400).
	Normal

	// Medium weight (500).
	Medium

	// SemiBold weight (600).
	SemiBold

	// Bold weight (700).
	Bold

	// ExtraBold weight (800).
	ExtraBold

	// Black weight (900).
	Black
)

// Slants are the font slant options.
// The zero value SlantUnset means the slant is not specified.
type Slants int32 //enums:enum -transform kebab -trim-prefix Slant

const (
	// SlantUnset means no slant is specified, so it is inherited.
	SlantUnset Slants = iota

	// SlantNormal is upright text.
	SlantNormal

	// Italic is the italic version of the font.
	Italic
)

// Decorations are underline, line-through, etc, as bit flags
// that must be set using [Decorations.SetFlag].
// The zero value means no decoration is specified; [DecoNone]
// explicitly specifies the absence of any decoration.
type Decorations int64 //enums:bitflag -transform kebab -trim-prefix Deco

const (
	// Underline indicates to place a line below text.
	Underline Decorations = iota

	// LineThrough indicates to place a line through text.
	LineThrough

	// DecoNone explicitly specifies that there is no decoration.
	DecoNone
)
