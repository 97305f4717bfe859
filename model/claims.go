package model

import "github.com/golang-jwt/jwt/v5"

type AppClaims struct {
	Username  string `json:"username"`
	FactionID string `json:"factionId"`
	Rank      int    `json:"rank"`
	jwt.RegisteredClaims
}
