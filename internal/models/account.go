package models

// Account is the authoritative snapshot owned by the remote account service.
// Fields are written only from backend responses, never adjusted locally.
type Account struct {
	Balance       float64 `json:"balance"`
	Gems          int     `json:"gems"`
	UnclaimedGems int     `json:"unclaimedGems"`
	Refs          int     `json:"refs"`
	AdWatch       int     `json:"adWatch"`
	TodayIncome   float64 `json:"todayIncome"`
}

// Identity is the opaque auth context of the surrounding application.
// It is forwarded to the backend verbatim and never parsed or validated here.
type Identity struct {
	UserID   int64
	Username string
	InitData string
}
