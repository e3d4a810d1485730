// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package riot

import "testing"

func TestMatchPaths(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			"tft matches by puuid",
			TFTMatchesByPUUID("abc123"),
			"/tft/match/v1/matches/by-puuid/abc123/ids",
		},
		{
			"tft match by id",
			TFTMatchByID("KR_7001"),
			"/tft/match/v1/matches/KR_7001",
		},
		{
			"tft challenger league",
			TFTChallengerLeague,
			"tft/league/v1/challenger",
		},
		{
			"account by riot id",
			AccountByRiotID("Hide on bush", "KR1"),
			"riot/account/v1/accounts/by-riot-id/Hide on bush/KR1",
		},
		{
			"lol matches by puuid",
			LOLMatchesByPUUID("abc123"),
			"lol/match/v5/matches/by-puuid/abc123/ids",
		},
		{
			"lol match by id",
			LOLMatchByID("KR_7002"),
			"lol/match/v5/matches/KR_7002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}

func TestNewImages(t *testing.T) {
	if im := NewImages(""); im.BaseURL != DefaultImageBaseURL {
		t.Errorf("Expected default CDN, got %q", im.BaseURL)
	}

	if im := NewImages("https://cdn.example.com/img"); im.BaseURL != "https://cdn.example.com/img" {
		t.Errorf("Expected configured base, got %q", im.BaseURL)
	}
}

func TestImageURLs(t *testing.T) {
	im := Images{BaseURL: "https://cdn.example.com/img"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"profile icon", im.ProfileIcon(4568), "https://cdn.example.com/img/profileicon/4568.png"},
		{"spell", im.Spell("SummonerFlash.png"), "https://cdn.example.com/img/spell/SummonerFlash.png"},
		{"item", im.Item(3031), "https://cdn.example.com/img/item/3031.png"},
		{"rune", im.Rune("perk-images/Styles/Precision/Conqueror/Conqueror.png"), "https://cdn.example.com/img/perk-images/Styles/Precision/Conqueror/Conqueror.png"},
		{"champion", im.Champion("Ahri.png"), "https://cdn.example.com/img/champion/Ahri.png"},
		{"tft champion", im.TFTChampion("TFT12_Ahri.TFT_Set12.png"), "https://cdn.example.com/img/tft-champion/TFT12_Ahri.TFT_Set12.png"},
		{"tft item", im.TFTItem("TFT_Item_InfinityEdge"), "https://cdn.example.com/img/tft-item/TFT_Item_InfinityEdge.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}
