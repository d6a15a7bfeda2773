package usecase

import (
	"context"
	"fmt"
	"time"

	"gonotes/model"
	"gonotes/services"
	"gonotes/utils"
)

// UserStore is the persistence contract for user records. Find methods
// return (nil, nil) when no document matches.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
	Insert(ctx context.Context, user *model.User) error
}

type UserService struct {
	Users UserStore
}

// Register creates a new user with a hashed password. Email uniqueness is
// enforced here: a second signup with the same email fails with
// ErrUserExists and inserts nothing.
func (svc *UserService) Register(ctx context.Context, fullname, email, password string) (*model.User, error) {
	existing, err := svc.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		UserID:    utils.GenerateID(),
		FullName:  fullname,
		Email:     email,
		Password:  hash,
		CreatedAt: time.Now(),
	}

	if err := svc.Users.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// Authenticate verifies credentials and returns the matching user.
func (svc *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := svc.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !services.CheckPassword(password, user.Password) {
		return nil, ErrWrongPassword
	}

	return user, nil
}

// Profile looks up the user behind an authenticated identity.
func (svc *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
