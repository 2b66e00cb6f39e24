package entity

import (
	"time"

	"github.com/google/uuid"
)

type Base struct {
	ID        uuid.UUID  `db:"id" bson:"_id" json:"id"`
	CreatedAt time.Time  `db:"created_at" bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
}

type BaseSimple struct {
	ID        uuid.UUID `db:"id" bson:"_id" json:"id"`
	CreatedAt time.Time `db:"created_at" bson:"created_at" json:"created_at"`
}
