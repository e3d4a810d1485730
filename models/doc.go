// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Post: a board entry; every field is fixed at creation except the
    vote counters inside PollOptions
  - PollOption: one poll choice with its vote tally
  - Draft: uncommitted form state (raw tags string, raw poll slots)

# Request Types

  - UpdateDraftRequest: title, content, tags, game_type, password
  - TogglePollRequest: enabled
  - UpdatePollItemRequest: value
  - VoteRequest: option_id

# Response Types

  - BoardResponse: posts, post_count, selected_id
  - PostDetailResponse: post, total_votes, options (with ratios)
  - OptionTally: option plus its rounded vote share
  - SelectResponse: selected_id
  - ErrorResponse: error, message

# Constants

Game types, in display order (first one is the draft default):

	GameLOL      = "LOL"
	GameTFT      = "TFT"
	GameValorant = "VALORANT"
	GameEtc      = "ETC"

# Seed Data

SeedPosts returns the three starter posts the board boots with, two of
them carrying live polls.
*/
package models
