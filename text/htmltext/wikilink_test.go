// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"strings"
	"testing"

	"cogentcore.org/htmltext/text/spans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoDocWikilink(t *testing.T) {
	h := GoDocWikilink("cogentcore.org/htmltext", "doc")
	url, label := h("doc:htmlcore")
	assert.Equal(t, "https://pkg.go.dev/cogentcore.org/htmltext/htmlcore", url)
	assert.Equal(t, "htmlcore", label)
	url, label = h("doc:rich.Text")
	assert.Equal(t, "https://pkg.go.dev/cogentcore.org/htmltext/rich#Text", url)
	assert.Equal(t, "rich.Text", label)
	url, label = h("doc:rich.Text.Links")
	assert.Equal(t, "https://pkg.go.dev/cogentcore.org/htmltext/rich#Text.Links", url)
	assert.Equal(t, "rich.Text.Links", label)
	url, label = h("rich.Text")
	assert.Equal(t, "", url)
	assert.Equal(t, "", label)
}

func TestMarkdownWikilink(t *testing.T) {
	h := GoDocWikilink("cogentcore.org/htmltext", "doc")
	plain, sp, err := ParseMarkdown("See [[doc:rich.Text]] now", h)
	require.NoError(t, err)
	assert.Equal(t, "See rich.Text now", plain)
	assert.Equal(t, []spans.Span{
		{Kind: spans.URL, URL: "https://pkg.go.dev/cogentcore.org/htmltext/rich#Text", Start: 4, End: 13},
	}, sp)

	plain, sp, err = ParseMarkdown("See [[other]] and [x](https://x.org)", h)
	require.NoError(t, err)
	assert.Contains(t, plain, "other")
	assert.True(t, strings.HasSuffix(plain, " and x"))
	if assert.Len(t, sp, 1) {
		assert.Equal(t, "https://x.org", sp[0].URL)
	}
}
