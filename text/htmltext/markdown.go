// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"cogentcore.org/htmltext/text/rich"
	"cogentcore.org/htmltext/text/spans"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	mdhtml "github.com/gomarkdown/markdown/html"
)

// MarkdownToHTML renders the given markdown source to HTML, resolving
// any wikilinks with the given handlers, tried in order.
// Raw HTML in the markdown is passed through.
func MarkdownToHTML(src string, handlers ...WikilinkHandler) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	if len(handlers) > 0 {
		prev := p.RegisterInline('[', nil)
		p.RegisterInline('[', wikilink(handlers, prev))
	}
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return string(markdown.ToHTML([]byte(src), p, r))
}

// ParseMarkdown parses the given markdown source into plain text and
// spans, by rendering it to HTML and then calling [Parse].
func ParseMarkdown(src string, handlers ...WikilinkHandler) (string, []spans.Span, error) {
	return Parse(MarkdownToHTML(src, handlers...))
}

// MarkdownToRich parses the given markdown source and converts it into
// a [rich.Text] using the given style table.
func MarkdownToRich(src string, table spans.Table, handlers ...WikilinkHandler) (rich.Text, error) {
	plain, sp, err := ParseMarkdown(src, handlers...)
	if err != nil {
		return rich.Text{}, err
	}
	return spans.Convert(plain, sp, table)
}
