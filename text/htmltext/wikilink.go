// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// WikilinkHandler is a function that converts wikilink text to
// a corresponding URL and label text. If it returns "", "", the
// handler is skipped in favor of the next handlers.
// Wikilinks are of the form [[wikilink text]] in markdown. Only the
// text inside of the brackets is passed to the handler.
type WikilinkHandler func(text string) (url string, label string)

// GoDocWikilink returns a [WikilinkHandler] that converts wikilinks of the form
// [[prefix:identifier]] to a pkg.go.dev URL starting at base. For example, with
// base="cogentcore.org/htmltext" and prefix="doc", the wikilink [[doc:rich.Text]]
// results in the URL "https://pkg.go.dev/cogentcore.org/htmltext/rich#Text".
func GoDocWikilink(base string, prefix string) WikilinkHandler {
	return func(text string) (url string, label string) {
		if !strings.HasPrefix(text, prefix+":") {
			return "", ""
		}
		text = strings.TrimPrefix(text, prefix+":")
		// pkg.go.dev uses fragments for first dot within package
		t := strings.Replace(text, ".", "#", 1)
		url = "https://pkg.go.dev/" + base + "/" + t
		return url, text
	}
}

// inlineParser is a markdown parser function for inline elements.
type inlineParser = func(p *parser.Parser, data []byte, offset int) (int, ast.Node)

// note: this is from: https://github.com/kensanata/oddmu/blob/main/parser.go

// wikilink returns an inline parser for '[' that makes links from
// wikilinks using the given handlers, and otherwise calls the given
// previous parser for '['.
func wikilink(handlers []WikilinkHandler, prev inlineParser) inlineParser {
	return func(p *parser.Parser, original []byte, offset int) (int, ast.Node) {
		data := original[offset:]
		// minimum: [[X]]
		if len(data) < 5 || data[1] != '[' {
			return prev(p, original, offset)
		}
		end := bytes.Index(data[2:], []byte("]]"))
		if end <= 0 {
			return prev(p, original, offset)
		}
		text := string(data[2 : 2+end])
		for _, h := range handlers {
			url, label := h(text)
			if url == "" && label == "" {
				continue
			}
			link := &ast.Link{Destination: []byte(url)}
			ast.AppendChild(link, &ast.Text{Leaf: ast.Leaf{Literal: []byte(label)}})
			return end + 4, link
		}
		return prev(p, original, offset)
	}
}
