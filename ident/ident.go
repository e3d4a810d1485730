// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewPostID returns a fresh unique identifier for a post.
func NewPostID() string {
	return "post-" + uuid.NewString()
}

// NewOptionID returns a fresh unique identifier for a poll option.
func NewOptionID() string {
	id, _ := GenerateID(6)
	return "opt-" + id
}
