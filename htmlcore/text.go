// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmlcore provides a text component that renders HTML-formatted
// text as [rich.Text], opens its links when they are clicked on, and
// exposes them as accessibility actions.
package htmlcore

import (
	"cogentcore.org/htmltext/base/errors"
	"cogentcore.org/htmltext/system"
	"cogentcore.org/htmltext/text/htmltext"
	"cogentcore.org/htmltext/text/rich"
	"cogentcore.org/htmltext/text/spans"
)

// URLOpener is a function that opens the given URL, such as in a browser.
// It returns an error if the URL could not be opened.
type URLOpener func(url string) error

// Text is a component that displays HTML-formatted text with links.
// Its configuration fields may be set directly; use [NewText] for defaults.
// The rendered [rich.Text] and [Action]s are recomputed from the source
// on every render, and nothing is cached between renders.
type Text struct {

	// Styles, if non-nil, overrides the styles of [spans.DefaultTable]:
	// its defined fields take precedence over the defaults.
	Styles *spans.Table

	// Disabled is whether the text is disabled. Disabled text is dimmed,
	// its links are not opened on click, and it has no actions.
	Disabled bool

	// OpenURL is the function used to open URLs,
	// which defaults to [system.OpenURL].
	OpenURL URLOpener

	// OnError is called with any error from opening a URL or from
	// attaching actions. It defaults to logging the error.
	OnError func(err error)

	// OnClick, if non-nil, is called with the offset of a click that does
	// not open a link: one outside of any link, or any click when disabled.
	OnClick func(offset int)

	// WikilinkHandlers are used to resolve wikilinks in markdown,
	// tried in order. See [htmltext.WikilinkHandler].
	WikilinkHandlers []htmltext.WikilinkHandler
}

// NewText returns a new [Text] with basic defaults.
func NewText() *Text {
	return &Text{
		OpenURL: system.OpenURL,
		OnError: func(err error) { errors.Log(err) },
	}
}

// Table returns the style table used for rendering: the default
// table merged with [Text.Styles], disabled if the text is disabled.
func (t *Text) Table() spans.Table {
	tb := spans.DefaultTable().Merge(t.Styles)
	if t.Disabled {
		tb = tb.Disabled()
	}
	return tb
}

// Render parses the given HTML-formatted text and returns it as
// [rich.Text] styled with [Text.Table]. The error is from the parser or
// a [*spans.IllegalRangeError] for a span outside of the text.
func (t *Text) Render(src string) (rich.Text, error) {
	tx, err := htmltext.HTMLToRich(src, t.Table())
	return t.finish(tx, err)
}

// RenderMarkdown is like [Text.Render] for markdown source,
// resolving wikilinks with [Text.WikilinkHandlers].
func (t *Text) RenderMarkdown(src string) (rich.Text, error) {
	tx, err := htmltext.MarkdownToRich(src, t.Table(), t.WikilinkHandlers...)
	return t.finish(tx, err)
}

// finish dims the styles that come from span payloads, such as colors,
// which are not in the table, when the text is disabled.
func (t *Text) finish(tx rich.Text, err error) (rich.Text, error) {
	if err != nil {
		return rich.Text{}, err
	}
	if t.Disabled {
		tx = tx.Disabled()
	}
	return tx, nil
}

// handleError passes the given error to [Text.OnError],
// or logs it if that is nil.
func (t *Text) handleError(err error) {
	if t.OnError == nil {
		errors.Log(err)
		return
	}
	t.OnError(err)
}
