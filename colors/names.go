// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

var (
	// Transparent is fully transparent white, which is
	// distinct from the nil color.
	Transparent = color.NRGBA{255, 255, 255, 0}

	// Black is opaque black.
	Black = color.NRGBA{0, 0, 0, 255}

	// White is opaque white.
	White = color.NRGBA{255, 255, 255, 255}
)

// Map contains the named colors recognized by HTML text markup,
// the CSS basic color keywords plus the extra names Android's
// HTML font color handling accepts.
var Map = map[string]color.NRGBA{
	"aqua":      {0, 255, 255, 255},
	"black":     Black,
	"blue":      {0, 0, 255, 255},
	"cyan":      {0, 255, 255, 255},
	"darkgray":  {169, 169, 169, 255},
	"darkgrey":  {169, 169, 169, 255},
	"fuchsia":   {255, 0, 255, 255},
	"gray":      {128, 128, 128, 255},
	"grey":      {128, 128, 128, 255},
	"green":     {0, 128, 0, 255},
	"lightgray": {211, 211, 211, 255},
	"lightgrey": {211, 211, 211, 255},
	"lime":      {0, 255, 0, 255},
	"magenta":   {255, 0, 255, 255},
	"maroon":    {128, 0, 0, 255},
	"navy":      {0, 0, 128, 255},
	"olive":     {128, 128, 0, 255},
	"orange":    {255, 165, 0, 255},
	"purple":    {128, 0, 128, 255},
	"red":       {255, 0, 0, 255},
	"silver":    {192, 192, 192, 255},
	"teal":      {0, 128, 128, 255},
	"white":     White,
	"yellow":    {255, 255, 0, 255},
}
