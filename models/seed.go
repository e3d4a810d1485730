// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// SeedPosts returns the starter posts the board ships with, newest-first.
// They give the list and detail panels something to render before the
// first user-created post.
func SeedPosts() []Post {
	return []Post{
		{
			ID:        "p-001",
			Title:     "솔로 랭크 이렐리아 연구 메모",
			Content:   "이번 주에는 이렐리아를 정복자로 가볼 생각입니다. 빌드 순서와 스킬 트리에 대해 의견을 구합니다.",
			Tags:      []string{"이렐리아", "탑", "정복자"},
			GameType:  GameLOL,
			Password:  "1234",
			CreatedAt: "2024-11-20",

			PollEnabled: true,
			PollOptions: []PollOption{
				{ID: "opt-1", Label: "삼위일체 선구매", Votes: 18},
				{ID: "opt-2", Label: "얼어붙은 건틀릿 선구매", Votes: 11},
				{ID: "opt-3", Label: "선혈포식자 하이브리드", Votes: 9},
			},
		},
		{
			ID:          "p-002",
			Title:       "TFT 페어 업 토너먼트 팀원 모집",
			Content:     "다음 달 아마추어 대회에 나가볼 생각입니다. 페어 업 모드 경험 있으신 분 연락 주세요!",
			Tags:        []string{"TFT", "팀원모집", "페어업"},
			GameType:    GameTFT,
			Password:    "abcd",
			CreatedAt:   "2024-10-02",
			PollEnabled: false,
			PollOptions: []PollOption{},
		},
		{
			ID:        "p-003",
			Title:     "새 시즌 준비용 듀오 구합니다",
			Content:   "새 시즌 시작하면 플레티넘 목표로 달려보고 싶습니다. 음성 가능하신 분이면 좋겠어요.",
			Tags:      []string{"듀오", "랭크", "음성"},
			GameType:  GameLOL,
			Password:  "pass",
			CreatedAt: "2024-08-14",

			PollEnabled: true,
			PollOptions: []PollOption{
				{ID: "opt-4", Label: "저녁 8시 이후 가능", Votes: 7},
				{ID: "opt-5", Label: "주말 낮만 가능", Votes: 5},
			},
		},
	}
}
