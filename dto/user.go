package dto

import (
	"time"

	"gonotes/model"
)

type RegisterRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile is the projection returned to clients. The password hash is
// never part of any response.
type UserProfile struct {
	ID        string    `json:"id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserProfile(user *model.User) UserProfile {
	return UserProfile{
		ID:        user.UserID,
		Fullname:  user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
