package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	BaseSimple `bson:",inline"`
	UserID     uuid.UUID  `db:"user_id" bson:"user_id"`
	Token      uuid.UUID  `db:"token" bson:"token"`
	UserAgent  *string    `db:"user_agent" bson:"user_agent,omitempty"`
	IPAddress  *string    `db:"ip_address" bson:"ip_address,omitempty"`
	ExpiresAt  time.Time  `db:"expires_at" bson:"expires_at"`
	RevokedAt  *time.Time `db:"revoked_at" bson:"revoked_at,omitempty"`
}
