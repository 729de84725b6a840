// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlcore

import (
	"cogentcore.org/htmltext/base/errors"
	"cogentcore.org/htmltext/text/rich"
)

// ErrNoOpener is the error when a link is opened without a [Text.OpenURL].
var ErrNoOpener = errors.New("no URL opener")

// Dispatch returns the link that a click at the given rune offset in
// the given text activates: the first link, in the order links were
// added, whose range contains the offset. The end of a range is
// exclusive. It returns false if there is no such link.
func Dispatch(offset int, tx rich.Text) (rich.Link, bool) {
	ls := tx.LinksAt(offset)
	if len(ls) == 0 {
		return rich.Link{}, false
	}
	return ls[0], true
}

// Click handles a click at the given rune offset in the given text,
// which must have been rendered by this [Text]. It opens the link at
// the offset if there is one, and otherwise calls [Text.OnClick].
// When the text is disabled, it always calls [Text.OnClick].
// It returns whether a link was opened successfully.
func (t *Text) Click(tx rich.Text, offset int) bool {
	if !t.Disabled {
		if l, ok := Dispatch(offset, tx); ok {
			return t.open(l.URL)
		}
	}
	if t.OnClick != nil {
		t.OnClick(offset)
	}
	return false
}

// open opens the given URL with [Text.OpenURL], passing any error
// or panic to [Text.OnError] as an [*OpenError].
func (t *Text) open(url string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			t.handleError(&OpenError{URL: url, Err: errors.FromPanic(r)})
			ok = false
		}
	}()
	if t.OpenURL == nil {
		t.handleError(&OpenError{URL: url, Err: ErrNoOpener})
		return false
	}
	if err := t.OpenURL(url); err != nil {
		t.handleError(&OpenError{URL: url, Err: err})
		return false
	}
	return true
}
