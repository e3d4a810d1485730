// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/redeboard/models"
	"github.com/danielhkuo/redeboard/store"
)

// SeededStore returns a store holding the standard seed posts:
// p-001 (poll, votes 18/11/9), p-002 (no poll), p-003 (poll, votes 7/5).
func SeededStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(models.SeedPosts()...)
}

// ValidDraft returns a draft that passes validation, without a poll.
func ValidDraft() models.Draft {
	return models.Draft{
		Title:    "주말 칼바람 내전 하실 분",
		Content:  "10명 모이면 시작합니다. 디스코드 필수입니다.",
		Tags:     "내전, 칼바람",
		GameType: models.GameLOL,
		Password: "secret",
	}
}

// PollDraft returns a valid draft with an enabled two-option poll.
func PollDraft() models.Draft {
	draft := ValidDraft()
	draft.PollEnabled = true
	draft.PollItems = []string{"토요일 저녁", "일요일 저녁"}
	return draft
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
