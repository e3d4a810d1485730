// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the redeboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(board)

# Endpoints

Health:

	GET /health

Board reads:

	GET /board          - Posts newest-first, count, selection id
	GET /board/selected - Resolved selection with vote tally

Post operations:

	POST /posts              - Create post from a draft body
	POST /posts/{id}/select  - Select a post
	POST /posts/{id}/vote    - Vote on a poll option

Draft operations:

	GET  /draft               - Current draft
	PUT  /draft               - Replace form fields
	POST /draft/poll          - Enable/disable the draft poll
	POST /draft/items         - Append an empty poll slot
	PUT  /draft/items/{index} - Edit one poll slot
	POST /draft/submit        - Create a post from the draft
	POST /draft/reset         - Restore draft defaults

# Handler Initialization

The router creates handler instances over the shared Board state:

	postHandler := handlers.NewPostHandler(board)
	draftHandler := handlers.NewDraftHandler(board)
*/
package router
