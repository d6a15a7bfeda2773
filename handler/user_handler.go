package handler

import (
	"errors"

	"gonotes/dto"
	"gonotes/usecase"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

// GetUserHandler returns the profile of the authenticated user
func GetUserHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	user, err := userService.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		utils.TrackError("internal")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Success(c, gin.H{
		"user": dto.ToUserProfile(user),
	})
}
