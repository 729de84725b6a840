// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlcore

import (
	"cogentcore.org/htmltext/base/errors"
	"cogentcore.org/htmltext/text/rich"
)

// Action is an accessibility action that opens one link.
type Action struct {

	// Label is the text of the link.
	Label string

	// URL is the destination of the link.
	URL string

	// Activate opens the link and returns whether it was opened.
	Activate func() bool
}

// Semantics is a surface of assistive technology, such as a screen
// reader, that actions are attached to.
type Semantics interface {

	// SetActions sets the actions of the text, replacing any previous ones.
	SetActions(actions []Action) error
}

// Actions returns one action for each link in the given text, in the
// order the links were added, which must have been rendered by this [Text].
// Disabled text has no actions.
func (t *Text) Actions(tx rich.Text) []Action {
	if t.Disabled {
		return nil
	}
	var acts []Action
	for _, l := range tx.GetLinks() {
		url := l.URL
		acts = append(acts, Action{
			Label:    l.Label,
			URL:      url,
			Activate: func() bool { return t.open(url) },
		})
	}
	return acts
}

// Attach sets the [Text.Actions] for the given text on the given surface.
// An error or panic from the surface is passed to [Text.OnError] as a
// [*WiringError], and the text is then left without actions.
// It returns whether the actions were attached.
func (t *Text) Attach(s Semantics, tx rich.Text) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			t.handleError(&WiringError{Err: errors.FromPanic(r)})
			ok = false
		}
	}()
	if err := s.SetActions(t.Actions(tx)); err != nil {
		t.handleError(&WiringError{Err: err})
		return false
	}
	return true
}
