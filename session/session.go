// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"github.com/danielhkuo/redeboard/models"
	"github.com/danielhkuo/redeboard/store"
)

// initialPollItems is the number of empty poll label slots a fresh
// draft shows.
const initialPollItems = 2

// Session owns the transient draft for the one logical user. Nothing in
// it is part of a post until Submit hands the draft to the store.
type Session struct {
	draft models.Draft
}

// New returns a session with a default draft.
func New() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Draft returns a copy of the current draft. The poll item slice is
// copied too, so callers cannot reach into the session's state.
func (s *Session) Draft() models.Draft {
	draft := s.draft
	draft.PollItems = append([]string{}, s.draft.PollItems...)
	return draft
}

// Update replaces the draft's form fields. An unknown game type is
// ignored, mirroring the fixed choices of the form's select element.
func (s *Session) Update(req models.UpdateDraftRequest) {
	s.draft.Title = req.Title
	s.draft.Content = req.Content
	s.draft.Tags = req.Tags
	s.draft.Password = req.Password
	if models.IsGameType(req.GameType) {
		s.draft.GameType = req.GameType
	}
}

// TogglePoll flips the draft's poll flag. Poll label slots keep their
// contents across toggles; only Reset or a successful Submit clears
// them.
func (s *Session) TogglePoll(enabled bool) {
	s.draft.PollEnabled = enabled
}

// AddPollItem appends one empty poll label slot. There is no upper
// bound on the slot count.
func (s *Session) AddPollItem() {
	s.draft.PollItems = append(s.draft.PollItems, "")
}

// UpdatePollItem replaces the label at index. An out-of-range index is
// ignored.
func (s *Session) UpdatePollItem(index int, value string) {
	if index < 0 || index >= len(s.draft.PollItems) {
		return
	}
	s.draft.PollItems[index] = value
}

// Submit hands the draft to the store. On validation failure the draft
// is left exactly as typed so the user can correct and resubmit; on
// success the draft resets to defaults and the new post is returned
// (already selected by the store).
func (s *Session) Submit(st *store.Store) (models.Post, error) {
	post, err := st.CreatePost(s.draft)
	if err != nil {
		return models.Post{}, err
	}
	s.Reset()
	return post, nil
}

// Reset restores the draft to its defaults: empty fields, the first
// game type, poll disabled, two empty poll slots. Calling it twice is
// the same as calling it once.
func (s *Session) Reset() {
	s.draft = models.Draft{
		GameType:  models.GameTypes[0],
		PollItems: make([]string, initialPollItems),
	}
}
