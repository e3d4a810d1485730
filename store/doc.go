// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the in-memory post collection and its mutation rules.

# The Store

A Store holds one session's posts, newest-first, plus the currently
selected post id:

	st := store.New(models.SeedPosts()...)

Two operations mutate posts:

	post, err := st.CreatePost(draft) // normalize, validate, prepend, select
	st.Vote(postID, optionID)         // +1 on one option, or silent no-op

and one mutates the selection:

	st.Select(postID) // unchecked; resolved lazily by Selected

Mutations are copy-on-write. Vote builds a new posts slice and a new
options slice for the touched post, leaving every other post's backing
storage shared and unchanged.

# Invariants

  - Post ids are unique for the lifetime of the session.
  - A post with PollEnabled == false always has zero options.
  - Vote counters never decrease and only ever grow by one per Vote.
  - New posts go to the front; the relative order of the rest is kept.

# Validation

CreatePost trims title, content and password and fails with a
*ValidationError naming the empty ones. Tags may be empty, and an
enabled poll whose labels all trim to nothing still creates the post
(with an empty option list).

# Derived queries

TotalVotes, Ratio and Tally are pure functions of a post. They are
recomputed on every call rather than cached, so reads stay consistent
with the collection no matter how it was just mutated. Ratio rounds
half-up and returns 0 for an empty poll; per-option rounding means a
poll's ratios need not sum to exactly 100.
*/
package store
