// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the redeboard API.

# Handler Types

Each handler is a struct holding the shared Board state:

  - PostHandler: board reads, post creation, selection, voting
  - DraftHandler: draft field edits, poll slot edits, submit, reset

Handlers are created via constructor functions that accept a *Board:

	postHandler := handlers.NewPostHandler(board)

# The Board

Board bundles the session's two state owners, the post store and the
draft session, behind a single intent mutex. Every handler funnels its
work through Board.do, so one user intent always finishes before the
next begins and derived views never see a half-applied mutation.

# Board Flow

	GET  /board          → GetBoard (posts newest-first + selection id)
	GET  /board/selected → GetSelected (resolved selection + tally)
	POST /posts          → CreatePost (direct draft body)
	POST /posts/{id}/select → SelectPost
	POST /posts/{id}/vote   → Vote

# Draft Flow

	GET  /draft              → GetDraft
	PUT  /draft              → UpdateDraft (form fields)
	POST /draft/poll         → TogglePoll
	POST /draft/items        → AddPollItem
	PUT  /draft/items/{index} → UpdatePollItem
	POST /draft/submit       → Submit
	POST /draft/reset        → Reset

A failed Submit answers 400 with the validation message and leaves the
draft as typed. Votes against unknown posts, unknown options or
poll-disabled posts answer 200 with unchanged state rather than an
error.
*/
package handlers
