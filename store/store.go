// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"strings"
	"time"

	"github.com/danielhkuo/redeboard/ident"
	"github.com/danielhkuo/redeboard/models"
)

const dateLayout = "2006-01-02"

// ValidationError reports required draft fields that were empty after
// trimming. The post is not created.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "required: " + strings.Join(e.Missing, ", ")
}

// Store holds the canonical ordered post collection for one session,
// newest-first. Mutations are copy-on-write: each one produces a new
// posts slice, so a reader never observes a partially updated post.
// The Store itself does no locking; callers serialize intents.
type Store struct {
	posts      []models.Post
	selectedID string
	now        func() time.Time
}

// New creates a store holding the given posts, newest-first. The first
// post starts out selected.
func New(posts ...models.Post) *Store {
	s := &Store{posts: posts, now: time.Now}
	if len(posts) > 0 {
		s.selectedID = posts[0].ID
	}
	return s
}

// Posts returns the collection, newest-first. Callers must treat the
// slice as read-only.
func (s *Store) Posts() []models.Post {
	return s.posts
}

// Len returns the number of posts.
func (s *Store) Len() int {
	return len(s.posts)
}

// SelectedID returns the raw selection, which may refer to a post that
// is no longer in the collection. Use Selected for the resolved view.
func (s *Store) SelectedID() string {
	return s.selectedID
}

// Select records the selection without checking that the id exists.
// Selected resolves missing ids on every read, so a stale selection
// degrades to the first post instead of an undefined one.
func (s *Store) Select(postID string) {
	s.selectedID = postID
}

// Selected resolves the current selection: the post with the selected
// id, or the first post when the id is absent. The second return is
// false only when the store is empty.
func (s *Store) Selected() (models.Post, bool) {
	for _, p := range s.posts {
		if p.ID == s.selectedID {
			return p, true
		}
	}
	if len(s.posts) > 0 {
		return s.posts[0], true
	}
	return models.Post{}, false
}

// Find returns the post with the given id.
func (s *Store) Find(postID string) (models.Post, bool) {
	for _, p := range s.posts {
		if p.ID == postID {
			return p, true
		}
	}
	return models.Post{}, false
}

// CreatePost normalizes and validates the draft, then prepends the new
// post and selects it. Title, content and password must be non-empty
// after trimming; empty tags are fine, and an enabled poll that ends up
// with zero non-empty labels still creates the post with an empty
// option list. A game type outside the known set falls back to the
// default, the same constraint the draft form's select element imposes.
func (s *Store) CreatePost(draft models.Draft) (models.Post, error) {
	gameType := draft.GameType
	if !models.IsGameType(gameType) {
		gameType = models.GameTypes[0]
	}

	post := models.Post{
		ID:          ident.NewPostID(),
		Title:       strings.TrimSpace(draft.Title),
		Content:     strings.TrimSpace(draft.Content),
		Tags:        splitTags(draft.Tags),
		GameType:    gameType,
		Password:    strings.TrimSpace(draft.Password),
		CreatedAt:   s.now().Format(dateLayout),
		PollEnabled: draft.PollEnabled,
		PollOptions: preparePollOptions(draft),
	}

	var missing []string
	if post.Title == "" {
		missing = append(missing, "title")
	}
	if post.Content == "" {
		missing = append(missing, "content")
	}
	if post.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return models.Post{}, &ValidationError{Missing: missing}
	}

	next := make([]models.Post, 0, len(s.posts)+1)
	next = append(next, post)
	next = append(next, s.posts...)
	s.posts = next
	s.selectedID = post.ID

	return post, nil
}

// Vote increments the option's tally by exactly one. When the post is
// unknown, its poll is disabled, or the option is unknown, the store is
// left untouched; none of those cases is an error.
func (s *Store) Vote(postID, optionID string) {
	target := -1
	for i, p := range s.posts {
		if p.ID == postID {
			target = i
			break
		}
	}
	if target < 0 || !s.posts[target].PollEnabled {
		return
	}

	post := s.posts[target]
	voted := false
	options := make([]models.PollOption, len(post.PollOptions))
	for i, opt := range post.PollOptions {
		if opt.ID == optionID {
			opt.Votes++
			voted = true
		}
		options[i] = opt
	}
	if !voted {
		return
	}
	post.PollOptions = options

	next := make([]models.Post, len(s.posts))
	copy(next, s.posts)
	next[target] = post
	s.posts = next
}

// splitTags turns raw comma-separated input into trimmed tags, dropping
// empty segments and preserving order. Duplicates are allowed.
func splitTags(raw string) []string {
	tags := []string{}
	for _, seg := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(seg); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// preparePollOptions maps the draft's poll label slots to fresh options
// with zero votes. A disabled poll always yields an empty list, no
// matter what the slots contain.
func preparePollOptions(draft models.Draft) []models.PollOption {
	options := []models.PollOption{}
	if !draft.PollEnabled {
		return options
	}
	for _, item := range draft.PollItems {
		label := strings.TrimSpace(item)
		if label == "" {
			continue
		}
		options = append(options, models.PollOption{
			ID:    ident.NewOptionID(),
			Label: label,
			Votes: 0,
		})
	}
	return options
}
