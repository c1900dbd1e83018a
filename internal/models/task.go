package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `db:"id"          json:"id"`
	Username    string    `db:"username"    json:"username"`
	Title       string    `db:"title"       json:"title"`
	Description string    `db:"description" json:"description"`
	Completed   bool      `db:"completed"   json:"completed"`
	CreatedAt   time.Time `db:"created_at"  json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updatedAt"`
}
