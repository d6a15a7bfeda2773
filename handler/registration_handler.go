package handler

import (
	"errors"

	"gonotes/dto"
	"gonotes/services"
	"gonotes/usecase"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler creates an account and returns the new user together
// with a session token.
func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	// Field checks in a fixed order so clients get deterministic messages
	if req.Fullname == "" {
		utils.BadRequest(c, "Name is required")
		return
	}
	if req.Email == "" {
		utils.BadRequest(c, "Email is required")
		return
	}
	if req.Password == "" {
		utils.BadRequest(c, "Password is required")
		return
	}
	if !utils.IsValidEmail(req.Email) {
		utils.BadRequest(c, "Invalid email address")
		return
	}

	user, err := userService.Register(c.Request.Context(), req.Fullname, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUserExists) {
			utils.TrackAuthAttempt("failure", "register")
			utils.Conflict(c, "User already exists")
			return
		}
		utils.TrackError("internal")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("internal")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.TrackAuthAttempt("success", "register")
	utils.Created(c, "Signup successful", gin.H{
		"user":  user,
		"token": token,
	})
}
