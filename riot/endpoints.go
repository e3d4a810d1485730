// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package riot

import "fmt"

// DefaultImageBaseURL is the Data Dragon CDN used when IMAGE_BASE_URL
// is not set.
const DefaultImageBaseURL = "https://ddragon.leagueoflegends.com/cdn/14.22.1/img"

// Match and account API paths. These are path templates only; callers
// prepend the regional API host.

// TFTMatchesByPUUID returns the path listing a member's TFT match ids.
func TFTMatchesByPUUID(memberPUUID string) string {
	return fmt.Sprintf("/tft/match/v1/matches/by-puuid/%s/ids", memberPUUID)
}

// TFTMatchByID returns the path for one TFT match.
func TFTMatchByID(matchID string) string {
	return fmt.Sprintf("/tft/match/v1/matches/%s", matchID)
}

// TFTChallengerLeague is the path for the TFT challenger ladder.
const TFTChallengerLeague = "tft/league/v1/challenger"

// AccountByRiotID returns the path resolving a riot id (name + tagline)
// to an account.
func AccountByRiotID(gameName, tagLine string) string {
	return fmt.Sprintf("riot/account/v1/accounts/by-riot-id/%s/%s", gameName, tagLine)
}

// LOLMatchesByPUUID returns the path listing a member's LoL match ids.
func LOLMatchesByPUUID(memberPUUID string) string {
	return fmt.Sprintf("lol/match/v5/matches/by-puuid/%s/ids", memberPUUID)
}

// LOLMatchByID returns the path for one LoL match.
func LOLMatchByID(matchID string) string {
	return fmt.Sprintf("lol/match/v5/matches/%s", matchID)
}

// Images builds image URLs for game assets from a base URL. It does no
// validation; an unknown identifier simply yields a URL that will 404.
type Images struct {
	BaseURL string
}

// NewImages returns an image URL builder rooted at base, falling back
// to the default CDN when base is empty. The base normally comes from
// the parsed server config (the -image-base-url flag or IMAGE_BASE_URL).
func NewImages(base string) Images {
	if base == "" {
		base = DefaultImageBaseURL
	}
	return Images{BaseURL: base}
}

func (im Images) ProfileIcon(profileIconID int) string {
	return fmt.Sprintf("%s/profileicon/%d.png", im.BaseURL, profileIconID)
}

func (im Images) Spell(spellName string) string {
	return fmt.Sprintf("%s/spell/%s", im.BaseURL, spellName)
}

func (im Images) Item(itemID int) string {
	return fmt.Sprintf("%s/item/%d.png", im.BaseURL, itemID)
}

func (im Images) Rune(runeName string) string {
	return fmt.Sprintf("%s/%s", im.BaseURL, runeName)
}

func (im Images) Champion(championName string) string {
	return fmt.Sprintf("%s/champion/%s", im.BaseURL, championName)
}

func (im Images) TFTChampion(championName string) string {
	return fmt.Sprintf("%s/tft-champion/%s", im.BaseURL, championName)
}

func (im Images) TFTItem(itemName string) string {
	return fmt.Sprintf("%s/tft-item/%s.png", im.BaseURL, itemName)
}
