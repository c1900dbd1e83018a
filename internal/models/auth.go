package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is one active session grant. The token string itself is the
// lookup key on refresh, which makes the store the revocation authority.
type RefreshToken struct {
	ID        uint64    `db:"id"         json:"id"`
	Username  string    `db:"username"   json:"username"`
	Token     string    `db:"token"      json:"token"`
	TokenID   uuid.UUID `db:"token_id"   json:"tokenId"`
	Device    string    `db:"device"     json:"device"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	LastUsed  time.Time `db:"last_used"  json:"lastUsed"`
}
