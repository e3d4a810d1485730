// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danielhkuo/redeboard/models"
	"github.com/danielhkuo/redeboard/store"
)

func defaultDraft() models.Draft {
	return models.Draft{
		GameType:  models.GameTypes[0],
		PollItems: []string{"", ""},
	}
}

func filledRequest() models.UpdateDraftRequest {
	return models.UpdateDraftRequest{
		Title:    "토요일 발로란트 5인큐",
		Content:  "실버~골드 구간, 즐겜 위주로 돌립니다.",
		Tags:     "발로란트, 5인큐",
		GameType: models.GameValorant,
		Password: "vvv",
	}
}

func TestNewStartsAtDefaults(t *testing.T) {
	sess := New()
	if !reflect.DeepEqual(sess.Draft(), defaultDraft()) {
		t.Errorf("Expected default draft, got %+v", sess.Draft())
	}
}

func TestUpdate(t *testing.T) {
	sess := New()
	sess.Update(filledRequest())

	draft := sess.Draft()
	if draft.Title != "토요일 발로란트 5인큐" {
		t.Errorf("Title not applied: %q", draft.Title)
	}
	if draft.GameType != models.GameValorant {
		t.Errorf("GameType not applied: %q", draft.GameType)
	}
	if draft.PollEnabled || len(draft.PollItems) != 2 {
		t.Errorf("Update must not touch poll state, got %+v", draft)
	}
}

func TestUpdate_UnknownGameTypeIgnored(t *testing.T) {
	sess := New()
	req := filledRequest()
	req.GameType = "STARCRAFT"
	sess.Update(req)

	if got := sess.Draft().GameType; got != models.GameTypes[0] {
		t.Errorf("Unknown game type must keep previous value, got %q", got)
	}
}

func TestTogglePollPreservesLabels(t *testing.T) {
	sess := New()
	sess.TogglePoll(true)
	sess.UpdatePollItem(0, "금요일 밤")
	sess.UpdatePollItem(1, "토요일 밤")

	sess.TogglePoll(false)
	sess.TogglePoll(true)

	draft := sess.Draft()
	if !draft.PollEnabled {
		t.Error("Poll should be enabled")
	}
	want := []string{"금요일 밤", "토요일 밤"}
	if !reflect.DeepEqual(draft.PollItems, want) {
		t.Errorf("Labels must survive toggling, got %v", draft.PollItems)
	}
}

func TestAddPollItem(t *testing.T) {
	sess := New()
	sess.AddPollItem()
	sess.AddPollItem()

	draft := sess.Draft()
	if len(draft.PollItems) != 4 {
		t.Fatalf("Expected 4 slots, got %d", len(draft.PollItems))
	}
	for i, item := range draft.PollItems {
		if item != "" {
			t.Errorf("New slot %d should be empty, got %q", i, item)
		}
	}
}

func TestUpdatePollItem_OutOfRangeIgnored(t *testing.T) {
	sess := New()
	sess.UpdatePollItem(-1, "무시")
	sess.UpdatePollItem(2, "무시")
	sess.UpdatePollItem(99, "무시")

	if !reflect.DeepEqual(sess.Draft(), defaultDraft()) {
		t.Errorf("Out-of-range writes must change nothing, got %+v", sess.Draft())
	}
}

func TestDraftReturnsCopy(t *testing.T) {
	sess := New()
	draft := sess.Draft()
	draft.PollItems[0] = "외부 변경"

	if got := sess.Draft().PollItems[0]; got != "" {
		t.Errorf("Mutating the returned draft leaked into the session: %q", got)
	}
}

func TestSubmit(t *testing.T) {
	st := store.New(models.SeedPosts()...)
	sess := New()
	sess.Update(filledRequest())
	sess.TogglePoll(true)
	sess.UpdatePollItem(0, "금요일")
	sess.UpdatePollItem(1, "토요일")

	post, err := sess.Submit(st)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if st.Len() != 4 {
		t.Errorf("Expected 4 posts after submit, got %d", st.Len())
	}
	if st.SelectedID() != post.ID {
		t.Errorf("Submitted post must be selected, got %s", st.SelectedID())
	}
	if len(post.PollOptions) != 2 {
		t.Errorf("Expected 2 poll options, got %d", len(post.PollOptions))
	}
	if !reflect.DeepEqual(sess.Draft(), defaultDraft()) {
		t.Errorf("Draft must reset after submit, got %+v", sess.Draft())
	}
}

func TestSubmit_FailurePreservesDraft(t *testing.T) {
	st := store.New()
	sess := New()
	req := filledRequest()
	req.Password = ""
	sess.Update(req)
	before := sess.Draft()

	_, err := sess.Submit(st)

	var verr *store.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if st.Len() != 0 {
		t.Errorf("Failed submit must not create a post, store has %d", st.Len())
	}
	if !reflect.DeepEqual(sess.Draft(), before) {
		t.Errorf("Failed submit must keep the draft, got %+v", sess.Draft())
	}
}

func TestReset_Idempotent(t *testing.T) {
	sess := New()
	sess.Update(filledRequest())
	sess.TogglePoll(true)
	sess.AddPollItem()
	sess.UpdatePollItem(2, "일요일")

	sess.Reset()
	first := sess.Draft()
	sess.Reset()
	second := sess.Draft()

	if !reflect.DeepEqual(first, defaultDraft()) {
		t.Errorf("Expected default draft after reset, got %+v", first)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Reset must be idempotent: %+v vs %+v", first, second)
	}
}
