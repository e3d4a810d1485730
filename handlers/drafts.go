// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/redeboard/middleware"
	"github.com/danielhkuo/redeboard/models"
	"github.com/danielhkuo/redeboard/session"
	"github.com/danielhkuo/redeboard/store"
)

type DraftHandler struct {
	board *Board
}

func NewDraftHandler(board *Board) *DraftHandler {
	return &DraftHandler{board: board}
}

// draft reads the current draft under the intent lock.
func (h *DraftHandler) draft() models.Draft {
	var draft models.Draft
	h.board.do(func(_ *store.Store, sess *session.Session) {
		draft = sess.Draft()
	})
	return draft
}

// GetDraft handles GET /draft
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.draft())
}

// UpdateDraft handles PUT /draft
// Replaces the draft's form fields with the submitted values.
func (h *DraftHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateDraftRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.board.do(func(_ *store.Store, sess *session.Session) {
		sess.Update(req)
	})

	middleware.JSONResponse(w, http.StatusOK, h.draft())
}

// TogglePoll handles POST /draft/poll
// Flips the draft's poll flag; typed poll labels survive the toggle.
func (h *DraftHandler) TogglePoll(w http.ResponseWriter, r *http.Request) {
	var req models.TogglePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.board.do(func(_ *store.Store, sess *session.Session) {
		sess.TogglePoll(req.Enabled)
	})

	middleware.JSONResponse(w, http.StatusOK, h.draft())
}

// AddPollItem handles POST /draft/items
func (h *DraftHandler) AddPollItem(w http.ResponseWriter, r *http.Request) {
	h.board.do(func(_ *store.Store, sess *session.Session) {
		sess.AddPollItem()
	})

	middleware.JSONResponse(w, http.StatusOK, h.draft())
}

// UpdatePollItem handles PUT /draft/items/{index}
// A non-numeric index is a bad request; an out-of-range one is ignored
// and the draft comes back unchanged.
func (h *DraftHandler) UpdatePollItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be a number")
		return
	}

	var req models.UpdatePollItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.board.do(func(_ *store.Store, sess *session.Session) {
		sess.UpdatePollItem(index, req.Value)
	})

	middleware.JSONResponse(w, http.StatusOK, h.draft())
}

// Submit handles POST /draft/submit
// Creates a post from the draft. On validation failure the draft stays
// as typed and the message is surfaced for the user to acknowledge.
func (h *DraftHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	var err error
	h.board.do(func(st *store.Store, sess *session.Session) {
		post, err = sess.Submit(st)
	})

	var verr *store.ValidationError
	if errors.As(err, &verr) {
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}
	if err != nil {
		slog.Error("failed to submit draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit draft")
		return
	}

	slog.Info("draft submitted", "post_id", post.ID, "poll_options", len(post.PollOptions))

	middleware.JSONResponse(w, http.StatusCreated, post)
}

// Reset handles POST /draft/reset
func (h *DraftHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.board.do(func(_ *store.Store, sess *session.Session) {
		sess.Reset()
	})

	middleware.JSONResponse(w, http.StatusOK, h.draft())
}
