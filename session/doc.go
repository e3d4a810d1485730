// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session holds the in-progress post draft between user intents.

A Session mediates between raw form input and the store: field edits,
poll toggling and poll slot edits accumulate in the draft, and Submit
delegates to store.CreatePost.

	sess := session.New()
	sess.Update(fields)
	sess.TogglePoll(true)
	sess.AddPollItem()
	sess.UpdatePollItem(2, "주말 오전 고정")
	post, err := sess.Submit(st)

Submit keeps the draft untouched when the store rejects it, so a failed
attempt never loses what the user typed. A successful Submit, or an
explicit Reset, restores the defaults: empty fields, the first game
type, poll disabled, two empty poll slots.
*/
package session
