// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4117)
  - ImageBaseURL: Base URL for game asset images (optional; the riot
    package falls back to its default CDN when unset)

# CLI Flags

	-p               Server port
	-image-base-url  Game asset image base URL

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	IMAGE_BASE_URL → -image-base-url

CLI flags take precedence over environment variables. The server loads
a .env file before parsing, so either source may live there.

# Validation

Everything has a default; the only parse error besides bad flags is a
non-numeric PORT variable.
*/
package cliparse
