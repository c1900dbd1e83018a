package models

import "time"

type User struct {
	Username  string    `db:"username"   json:"username"`
	Password  string    `db:"password"   json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
