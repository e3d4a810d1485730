// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/redeboard/middleware"
	"github.com/danielhkuo/redeboard/models"
	"github.com/danielhkuo/redeboard/session"
	"github.com/danielhkuo/redeboard/store"
)

type PostHandler struct {
	board *Board
}

func NewPostHandler(board *Board) *PostHandler {
	return &PostHandler{board: board}
}

// GetBoard handles GET /board
// Returns all posts newest-first plus the raw selection id.
func (h *PostHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	var resp models.BoardResponse
	h.board.do(func(st *store.Store, _ *session.Session) {
		resp = models.BoardResponse{
			Posts:      st.Posts(),
			PostCount:  st.Len(),
			SelectedID: st.SelectedID(),
		}
	})
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetSelected handles GET /board/selected
// Resolves the selection (falling back to the first post) and returns
// the post with its freshly computed tally.
func (h *PostHandler) GetSelected(w http.ResponseWriter, r *http.Request) {
	var resp models.PostDetailResponse
	found := false
	h.board.do(func(st *store.Store, _ *session.Session) {
		post, ok := st.Selected()
		if !ok {
			return
		}
		found = true
		total, options := store.Tally(post)
		resp = models.PostDetailResponse{Post: post, TotalVotes: total, Options: options}
	})

	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Board is empty")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// CreatePost handles POST /posts
// Creates a post directly from a draft body, bypassing the session
// draft. The store normalizes and validates exactly as for a submitted
// draft.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var draft models.Draft
	if err := middleware.ParseJSONBody(r, &draft); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var post models.Post
	var err error
	h.board.do(func(st *store.Store, _ *session.Session) {
		post, err = st.CreatePost(draft)
	})

	var verr *store.ValidationError
	if errors.As(err, &verr) {
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create post", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	slog.Info("post created", "post_id", post.ID, "game_type", post.GameType, "poll_enabled", post.PollEnabled)

	middleware.JSONResponse(w, http.StatusCreated, post)
}

// SelectPost handles POST /posts/{id}/select
// Records the selection without checking existence; reads resolve a
// stale id to the first post.
func (h *PostHandler) SelectPost(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")
	if postID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "post id is required")
		return
	}

	h.board.do(func(st *store.Store, _ *session.Session) {
		st.Select(postID)
	})

	middleware.JSONResponse(w, http.StatusOK, models.SelectResponse{SelectedID: postID})
}

// Vote handles POST /posts/{id}/vote
// Applies one vote to the named option. A vote against an unknown post,
// a poll-disabled post, or an unknown option leaves the board unchanged
// and still answers 200; the body is always the detail view of the
// voted post, or of the resolved selection when the post id is unknown.
func (h *PostHandler) Vote(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")
	if postID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "post id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.OptionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	var resp models.PostDetailResponse
	found := false
	resolved := false
	h.board.do(func(st *store.Store, _ *session.Session) {
		st.Vote(postID, req.OptionID)
		post, ok := st.Find(postID)
		if ok {
			found = true
		} else {
			// Unknown post id: the vote was ignored. Fall back to the
			// resolved selection so the response keeps its shape.
			post, ok = st.Selected()
			if !ok {
				return
			}
		}
		resolved = true
		total, options := store.Tally(post)
		resp = models.PostDetailResponse{Post: post, TotalVotes: total, Options: options}
	})

	if !resolved {
		middleware.ErrorResponse(w, http.StatusNotFound, "Board is empty")
		return
	}

	if !found {
		slog.Warn("vote ignored", "post_id", postID, "option_id", req.OptionID)
	} else {
		slog.Info("vote processed", "post_id", postID, "option_id", req.OptionID, "total_votes", resp.TotalVotes)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
