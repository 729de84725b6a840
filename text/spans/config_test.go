// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spans

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/htmltext/text/rich"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTableTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "styles.toml")
	src := `[url]
color = "#ff0000"
weight = "semi-bold"

[strikethrough]
decoration = "line-through|underline"

[relative-size]
relative-size = 1.5
`
	require.NoError(t, os.WriteFile(fn, []byte(src), 0666))
	tb, err := OpenTable(fn)
	require.NoError(t, err)

	assert.Equal(t, red, tb.URL.Color)
	assert.Equal(t, rich.SemiBold, tb.URL.Weight)
	assert.True(t, tb.Strikethrough.Decoration.HasFlag(rich.Underline))
	assert.True(t, tb.Strikethrough.Decoration.HasFlag(rich.LineThrough))
	assert.Equal(t, float32(1.5), tb.RelativeSize.RelativeSize)
	assert.True(t, tb.Bold.IsZero())

	m := DefaultTable().Merge(tb)
	assert.Equal(t, red, m.URL.Color)
	assert.True(t, m.URL.Decoration.HasFlag(rich.Underline))
}

func TestOpenTableYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "styles.yaml")
	src := `bold:
  color: green
  slant: italic
`
	require.NoError(t, os.WriteFile(fn, []byte(src), 0666))
	tb, err := OpenTable(fn)
	require.NoError(t, err)
	assert.Equal(t, green, tb.Bold.Color)
	assert.Equal(t, rich.Italic, tb.Bold.Slant)
}

func TestOpenTableErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"unknown-kind.toml": "[blink]\ncolor = \"red\"\n",
		"no-style.toml":     "[quote]\ncolor = \"red\"\n",
		"bad-color.toml":    "[bold]\ncolor = \"not-a-color\"\n",
		"bad-enum.toml":     "[bold]\nweight = \"heavy\"\n",
		"bad-field.toml":    "[bold]\nblink = true\n",
	}
	for name, src := range tests {
		fn := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fn, []byte(src), 0666))
		_, err := OpenTable(fn)
		assert.Error(t, err, name)
	}
}

func TestSaveTable(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml"} {
		fn := filepath.Join(t.TempDir(), "styles"+ext)
		tb := DefaultTable()
		tb.Subscript.RelativeSize = 0.75
		require.NoError(t, SaveTable(tb, fn), ext)
		back, err := OpenTable(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, tb, *back, ext)
	}
}

func TestWriteTable(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteTable(DefaultTable(), &b))
	out := b.String()
	assert.Contains(t, out, "[url]")
	assert.Contains(t, out, "underline")
	assert.Contains(t, out, "[scale-x]")
	assert.Contains(t, out, "none")
}
