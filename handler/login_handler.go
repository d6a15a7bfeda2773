package handler

import (
	"errors"

	"gonotes/dto"
	"gonotes/services"
	"gonotes/usecase"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler verifies credentials and issues a session token. Unlike
// account creation, the user record is not echoed back; only the email
// and token are returned.
func LoginHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
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

	user, err := userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			utils.TrackAuthAttempt("failure", "login")
			utils.NotFound(c, "User does not exist")
		case errors.Is(err, usecase.ErrWrongPassword):
			utils.TrackAuthAttempt("failure", "login")
			utils.Forbidden(c, "Password is incorrect")
		default:
			utils.TrackError("internal")
			utils.InternalError(c, "Internal Server Error")
		}
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("internal")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.TrackAuthAttempt("success", "login")
	utils.SuccessWithMessage(c, "Login successful", gin.H{
		"email": user.Email,
		"token": token,
	})
}
