// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/redeboard/handlers"
	"github.com/danielhkuo/redeboard/middleware"
)

func NewRouter(board *handlers.Board) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	postHandler := handlers.NewPostHandler(board)
	draftHandler := handlers.NewDraftHandler(board)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Board reads
	mux.HandleFunc("GET /board", middleware.WithLogging(postHandler.GetBoard))
	mux.HandleFunc("GET /board/selected", middleware.WithLogging(postHandler.GetSelected))

	// Post operations
	mux.HandleFunc("POST /posts", middleware.WithLogging(postHandler.CreatePost))
	mux.HandleFunc("POST /posts/{id}/select", middleware.WithLogging(postHandler.SelectPost))
	mux.HandleFunc("POST /posts/{id}/vote", middleware.WithLogging(postHandler.Vote))

	// Draft operations
	mux.HandleFunc("GET /draft", middleware.WithLogging(draftHandler.GetDraft))
	mux.HandleFunc("PUT /draft", middleware.WithLogging(draftHandler.UpdateDraft))
	mux.HandleFunc("POST /draft/poll", middleware.WithLogging(draftHandler.TogglePoll))
	mux.HandleFunc("POST /draft/items", middleware.WithLogging(draftHandler.AddPollItem))
	mux.HandleFunc("PUT /draft/items/{index}", middleware.WithLogging(draftHandler.UpdatePollItem))
	mux.HandleFunc("POST /draft/submit", middleware.WithLogging(draftHandler.Submit))
	mux.HandleFunc("POST /draft/reset", middleware.WithLogging(draftHandler.Reset))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("redeboard API v1"))
	})

	return mux
}
