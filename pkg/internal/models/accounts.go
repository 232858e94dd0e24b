package models

import (
	"time"

	"gorm.io/datatypes"
)

// Account is one registered user. The primary key is the opaque
// identifier assigned by the identity provider, not something we mint.
// A row only exists once the user has claimed a username; before that
// the identity is considered unprovisioned.
type Account struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex"`

	// Both sides of the social graph are kept as denormalized username
	// lists. Follow/unfollow maintains the pair with two separate writes.
	Followers datatypes.JSONSlice[string] `json:"followers"`
	Following datatypes.JSONSlice[string] `json:"following"`

	Posts []Post `json:"posts" gorm:"foreignKey:AccountID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
