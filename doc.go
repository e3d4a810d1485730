// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the redeboard API server.

Redeboard is a single-session community board for game posts (LoL, TFT,
Valorant and others) with embedded multi-option polls and live tallying.
All state lives in memory and belongs to one logical user; nothing
survives a restart.

# Starting the Server

	go run main.go

Or with a custom port:

	go run main.go -p 4117

# Configuration

Optional settings (flags fall back to env vars, a .env file is loaded
first):

  - PORT (-p): Server port (default: 4117)
  - IMAGE_BASE_URL (-image-base-url): Base URL for game asset images

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: in-memory post collection, mutation rules, derived tallies
  - session: transient post draft (form state before submission)
  - handlers: HTTP request handlers over the shared board state
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain, request and response types plus seed posts
  - ident: unique id generation
  - riot: game asset and match lookup URL templating
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
