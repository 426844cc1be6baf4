// Package models defines the domain records kept consistent across the
// primary store, the mirror store, blob storage and the search index.
package models

import "time"

// Privilege levels assigned at account creation. The single designated
// administrator email gets LevelAdmin, everyone else LevelMember.
const (
	LevelAdmin  = 0
	LevelMember = 5
)

// Account mirrors an identity-provider subject into the primary and mirror
// stores. The two copies stay field-equivalent except for the timestamp
// representation (the mirror carries epoch milliseconds).
type Account struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL"`
	Level       int       `json:"level"`
	CreatedAt   time.Time `json:"createdAt"`
	VisitedAt   time.Time `json:"visitedAt"`
	VisitCount  int64     `json:"visitCount"`
}

// AccountPayload is what the identity provider sends on signup/removal.
type AccountPayload struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}
