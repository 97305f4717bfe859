package model

// User is the account record stored at Users/<username>. The username is
// the document key, so the store enforces at most one record per username;
// the pre-insert existence check in the auth service is what guards
// against overwrites.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	FactionID    string `json:"factionId"`
	Rank         int    `json:"rank"`
	Blocked      bool   `json:"blocked"`
}

// PublicUser is the view of a User safe to return from the API.
type PublicUser struct {
	Username  string `json:"username"`
	FactionID string `json:"factionId"`
	Rank      int    `json:"rank"`
	Blocked   bool   `json:"blocked"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		Username:  u.Username,
		FactionID: u.FactionID,
		Rank:      u.Rank,
		Blocked:   u.Blocked,
	}
}
