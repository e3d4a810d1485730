// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"sync"

	"github.com/danielhkuo/redeboard/session"
	"github.com/danielhkuo/redeboard/store"
)

// Board bundles the one logical session's state: the post store and the
// draft. A single mutex serializes intents so each one runs to
// completion before the next is processed, which is all the
// synchronization the single-user model needs.
type Board struct {
	mu      sync.Mutex
	store   *store.Store
	session *session.Session
}

func NewBoard(st *store.Store, sess *session.Session) *Board {
	return &Board{store: st, session: sess}
}

// do runs one user intent under the intent lock.
func (b *Board) do(intent func(st *store.Store, sess *session.Session)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	intent(b.store, b.session)
}
