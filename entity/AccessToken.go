package entity

import (
	"time"
)

// AccessToken is the server-side record behind every issued JWT, keyed by
// the token's jti claim. Logout revokes the row, which invalidates the
// token before its expiry.
type AccessToken struct {
	Model
	JTI       string     `gorm:"uniqueIndex;not null" json:"-"`
	UserID    uint       `gorm:"not null" json:"-"`
	UserKind  string     `gorm:"not null" json:"-"`
	ExpiresAt time.Time  `json:"-"`
	RevokedAt *time.Time `json:"-"`
}
