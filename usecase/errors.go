package usecase

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrUserExists    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user does not exist")
	ErrWrongPassword = errors.New("password is incorrect")
	ErrNoteNotFound  = errors.New("note not found")
)
