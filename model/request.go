// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user account.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=8"`
	FactionID string `json:"factionId" validate:"required"`
	Rank      int    `json:"rank" validate:"gte=0"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest defines the payload for renewing an access token.
type RefreshRequest struct {
	Username     string `json:"username" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LeaveRequest defines the payload for filing a member leave of absence.
type LeaveRequest struct {
	DiscordID string `json:"discordId" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// RankUpdateRequest defines the payload for changing a faction member's rank.
type RankUpdateRequest struct {
	NewRank int `json:"newRank" validate:"gte=0"`
}

// CodeRequest defines the payload for registering a recruitment code.
type CodeRequest struct {
	Code string `json:"code" validate:"required"`
}
