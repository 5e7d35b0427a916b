package models

// SubmitResult is the backend's withdrawal response envelope. On rejection
// Error carries a human-readable message that is shown to the user verbatim.
type SubmitResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Data    *Account `json:"data,omitempty"`
}

type GemClaim struct {
	Gems          int `json:"gems"`
	UnclaimedGems int `json:"unclaimedGems"`
}

// ClaimResult is the backend's gem-claim response envelope.
type ClaimResult struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    *GemClaim `json:"data,omitempty"`
}

type LeaderboardPlayer struct {
	Rank           int     `json:"rank"`
	Username       string  `json:"username"`
	TotalWithdrawn float64 `json:"totalWithdrawn"`
}

type Leaderboard struct {
	Players []LeaderboardPlayer `json:"players"`
}
