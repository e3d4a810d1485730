package models

// Game type constants
const (
	GameLOL      = "LOL"
	GameTFT      = "TFT"
	GameValorant = "VALORANT"
	GameEtc      = "ETC"
)

// GameTypes lists the selectable game types in display order.
// The first entry is the default for a fresh draft.
var GameTypes = []string{GameLOL, GameTFT, GameValorant, GameEtc}

// IsGameType reports whether s is one of the known game types.
func IsGameType(s string) bool {
	for _, g := range GameTypes {
		if g == s {
			return true
		}
	}
	return false
}

// Domain types

type PollOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Votes int    `json:"votes"`
}

type Post struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Tags        []string     `json:"tags"`
	GameType    string       `json:"game_type"`
	Password    string       `json:"-"` // Write-only credential, never expose in JSON
	CreatedAt   string       `json:"created_at"` // Calendar date, YYYY-MM-DD
	PollEnabled bool         `json:"poll_enabled"`
	PollOptions []PollOption `json:"poll_options"`
}

// Draft holds the uncommitted form state for a new post. Tags is the raw
// comma-separated input; PollItems are the raw poll label slots. Both are
// normalized by the store at creation time.
type Draft struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        string   `json:"tags"`
	GameType    string   `json:"game_type"`
	Password    string   `json:"password"`
	PollEnabled bool     `json:"poll_enabled"`
	PollItems   []string `json:"poll_items"`
}

// Request types

type UpdateDraftRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Tags     string `json:"tags"`
	GameType string `json:"game_type"`
	Password string `json:"password"`
}

type TogglePollRequest struct {
	Enabled bool `json:"enabled"`
}

type UpdatePollItemRequest struct {
	Value string `json:"value"`
}

type VoteRequest struct {
	OptionID string `json:"option_id"`
}

// Response types

type BoardResponse struct {
	Posts      []Post `json:"posts"`
	PostCount  int    `json:"post_count"`
	SelectedID string `json:"selected_id"`
}

// OptionTally is a poll option together with its derived vote share.
type OptionTally struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Votes int    `json:"votes"`
	Ratio int    `json:"ratio"` // rounded percentage of the post's total votes
}

type PostDetailResponse struct {
	Post       Post          `json:"post"`
	TotalVotes int           `json:"total_votes"`
	Options    []OptionTally `json:"options"`
}

type SelectResponse struct {
	SelectedID string `json:"selected_id"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
