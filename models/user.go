package models

import (
	"time"
)

type User struct {
	ID           int64     `bson:"_id" json:"user_id"`
	LoginID      string    `bson:"login_id" json:"login_id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	AccessToken  string    `bson:"access_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
