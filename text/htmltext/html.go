// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmltext parses HTML-formatted text into plain text and the
// [spans.Span] markup ranges over it, and converts those into [rich.Text].
package htmltext

import (
	"io"
	"strings"
	"unicode"

	"cogentcore.org/htmltext/base/errors"
	"cogentcore.org/htmltext/base/stack"
	"cogentcore.org/htmltext/text/rich"
	"cogentcore.org/htmltext/text/spans"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// ObjectReplacement is the character that stands in for an image
// in the plain text.
const ObjectReplacement = '￼'

// element is an open element on the tag stack.
type element struct {
	// tag is the lowercase tag name.
	tag string

	// start is the rune index in the output where the element started.
	start int

	// spans are the spans to emit when the element is closed,
	// with their ranges not yet set.
	spans []spans.Span
}

// htmlParser has the state of one [Parse] call.
type htmlParser struct {
	out   []rune
	spans []spans.Span
	open  stack.Stack[*element]

	// pendingBreak is set after a block element starts or ends,
	// and a newline is written before any further content.
	pendingBreak bool

	// pre is the depth of <pre> elements, in which whitespace is kept.
	pre int

	// skip is the depth of elements whose content is not text,
	// such as <script> and <style>.
	skip int
}

// Parse parses the given HTML-formatted text into the plain text and the
// spans of its markup, in rune indexes. Spans are in the order their
// elements are closed, so inner elements come before outer ones.
// Whitespace is collapsed as in HTML, except within <pre>, and block
// elements start on a new line. Unknown tags keep their text without
// any span. Any error is from reading the HTML, not from its content.
//
// Text is normalized to NFC one text token at a time, after entities are
// decoded; the source is not normalized as a whole, since that could
// compose a combining mark with the '<' or '>' of a tag. A combining mark
// separated from its base character by a tag is thus kept decomposed.
func Parse(src string) (string, []spans.Span, error) {
	p := &htmlParser{}
	z := html.NewTokenizer(strings.NewReader(src))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", nil, err
			}
			break
		}
		tok := z.Token()
		switch tt {
		case html.TextToken:
			p.text(tok.Data)
		case html.StartTagToken:
			p.startTag(tok)
		case html.SelfClosingTagToken:
			p.startTag(tok)
			if !isVoid(tok.Data) {
				p.endTag(tok.Data)
			}
		case html.EndTagToken:
			p.endTag(tok.Data)
		}
	}
	for len(p.open) > 0 {
		p.close(p.open.Pop())
	}
	p.trimTrailingNewlines()
	return string(p.out), p.spans, nil
}

// trimTrailingNewlines removes newlines at the end of the output,
// shortening any spans that covered them.
func (p *htmlParser) trimTrailingNewlines() {
	n := len(p.out)
	for n > 0 && p.out[n-1] == '\n' {
		n--
	}
	if n == len(p.out) {
		return
	}
	p.out = p.out[:n]
	sp := p.spans[:0]
	for _, s := range p.spans {
		s.Start = min(s.Start, n)
		s.End = min(s.End, n)
		if s.Start < s.End {
			sp = append(sp, s)
		}
	}
	p.spans = sp
}

// text adds the given text content.
func (p *htmlParser) text(s string) {
	if p.skip > 0 {
		return
	}
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	if p.pre > 0 {
		if s == "" {
			return
		}
		p.flushBreak()
		p.out = append(p.out, []rune(s)...)
		return
	}
	s = collapseSpace(s)
	if p.pendingBreak || p.atLineStart() {
		s = strings.TrimLeft(s, " ")
	}
	if s == "" {
		return
	}
	p.flushBreak()
	p.out = append(p.out, []rune(s)...)
}

// atLineStart returns whether the output is empty or ends with
// whitespace, so that leading whitespace is to be dropped.
func (p *htmlParser) atLineStart() bool {
	n := len(p.out)
	return n == 0 || p.out[n-1] == ' ' || p.out[n-1] == '\n'
}

// blockBreak requests a line break before any further content.
func (p *htmlParser) blockBreak() {
	p.pendingBreak = true
}

// flushBreak writes a pending line break. A trailing space is replaced
// by the newline, which keeps the positions of any spans ending there.
func (p *htmlParser) flushBreak() {
	if !p.pendingBreak {
		return
	}
	p.pendingBreak = false
	n := len(p.out)
	switch {
	case n == 0 || p.out[n-1] == '\n':
	case p.out[n-1] == ' ':
		p.out[n-1] = '\n'
	default:
		p.out = append(p.out, '\n')
	}
}

// lineBreak writes an explicit line break, as for <br>.
func (p *htmlParser) lineBreak() {
	p.flushBreak()
	n := len(p.out)
	if n > 0 && p.out[n-1] == ' ' {
		p.out[n-1] = '\n'
		return
	}
	p.out = append(p.out, '\n')
}

func (p *htmlParser) startTag(tok html.Token) {
	tag := tok.Data
	switch tag {
	case "script", "style", "head", "title":
		p.skip++
	case "pre":
		p.pre++
	case "br":
		p.lineBreak()
		return
	case "hr":
		p.blockBreak()
		return
	case "img":
		p.image(tok)
		return
	}
	if isBlock(tag) {
		p.blockBreak()
	}
	if isVoid(tag) {
		return
	}
	p.flushBreak()
	p.open.Push(&element{tag: tag, start: len(p.out), spans: tagSpans(tag, tok.Attr)})
}

func (p *htmlParser) endTag(tag string) {
	idx := -1
	for i := len(p.open) - 1; i >= 0; i-- {
		if p.open[i].tag == tag {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	for len(p.open) > idx {
		p.close(p.open.Pop())
	}
}

// close emits the spans of the given element, ending at the current
// position. Empty elements have no spans.
func (p *htmlParser) close(el *element) {
	switch el.tag {
	case "script", "style", "head", "title":
		p.skip = max(p.skip-1, 0)
	case "pre":
		p.pre = max(p.pre-1, 0)
	}
	end := len(p.out)
	if isBlock(el.tag) {
		p.blockBreak()
	}
	if end == el.start {
		return
	}
	for _, sp := range el.spans {
		sp.Start = el.start
		sp.End = end
		p.spans = append(p.spans, sp)
	}
}

// image adds an object replacement character for an <img>.
func (p *htmlParser) image(tok html.Token) {
	p.flushBreak()
	src := ""
	for _, a := range tok.Attr {
		if a.Key == "src" {
			src = a.Val
		}
	}
	st := len(p.out)
	p.out = append(p.out, ObjectReplacement)
	p.spans = append(p.spans, spans.Span{Kind: spans.Image, URL: src, Start: st, End: st + 1})
}

// collapseSpace replaces every run of whitespace with a single space.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// HTMLToRich parses the given HTML-formatted text and converts it into
// a [rich.Text] using the given style table.
func HTMLToRich(src string, table spans.Table) (rich.Text, error) {
	plain, sp, err := Parse(src)
	if err != nil {
		return rich.Text{}, err
	}
	return spans.Convert(plain, sp, table)
}
