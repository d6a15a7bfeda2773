package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	FullName  string    `bson:"fullname" json:"fullname"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // hashed, never serialized
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
