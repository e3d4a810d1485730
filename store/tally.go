// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"math"

	"github.com/danielhkuo/redeboard/models"
)

// TotalVotes sums the vote counters of a post's options. A post without
// options (or without a poll) totals zero.
func TotalVotes(post models.Post) int {
	total := 0
	for _, opt := range post.PollOptions {
		total += opt.Votes
	}
	return total
}

// Ratio returns votes as a rounded percentage of total. A zero total
// yields zero; there is never a division by zero. Because each option
// rounds independently, ratios across a poll need not sum to 100.
func Ratio(votes, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(votes) / float64(total) * 100))
}

// Tally computes the derived per-option view of a post's poll. It is a
// pure function of the post and is recomputed on every call.
func Tally(post models.Post) (int, []models.OptionTally) {
	total := TotalVotes(post)
	options := make([]models.OptionTally, len(post.PollOptions))
	for i, opt := range post.PollOptions {
		options[i] = models.OptionTally{
			ID:    opt.ID,
			Label: opt.Label,
			Votes: opt.Votes,
			Ratio: Ratio(opt.Votes, total),
		}
	}
	return total, options
}
