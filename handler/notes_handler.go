package handler

import (
	"errors"

	"gonotes/dto"
	"gonotes/usecase"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

func AddNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if req.Title == "" {
		utils.BadRequest(c, "Title is required")
		return
	}
	if req.Content == "" {
		utils.BadRequest(c, "Content is required")
		return
	}

	userID := c.GetString("user_id")
	note, err := notesService.Create(c.Request.Context(), userID, req.Title, req.Content, req.Tags)
	if err != nil {
		utils.TrackError("internal")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Created(c, "Note added successfully", gin.H{"note": note})
}

func EditNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("noteId")
	userID := c.GetString("user_id")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if req.Empty() {
		utils.BadRequest(c, "No changes provided")
		return
	}

	note, err := notesService.Update(c.Request.Context(), noteID, userID, req)
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.TrackError("internal")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.SuccessWithMessage(c, "Note updated successfully", gin.H{"note": note})
}

func GetAllNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	notes, err := notesService.List(c.Request.Context(), userID)
	if err != nil {
		utils.TrackError("internal")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Success(c, gin.H{"notes": notes})
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("noteId")
	userID := c.GetString("user_id")

	if err := notesService.Delete(c.Request.Context(), noteID, userID); err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.TrackError("internal")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.SuccessWithMessage(c, "Note deleted successfully", nil)
}

func UpdateNotePinnedHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("noteId")
	userID := c.GetString("user_id")

	var req dto.UpdatePinnedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	// The value is required; there is no partial-omission logic here
	if req.IsPinned == nil {
		utils.BadRequest(c, "IsPinned is required")
		return
	}

	note, err := notesService.SetPinned(c.Request.Context(), noteID, userID, *req.IsPinned)
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.TrackError("internal")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.SuccessWithMessage(c, "Note updated successfully", gin.H{"note": note})
}

func SearchNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	query := c.Query("query")
	if query == "" {
		utils.BadRequest(c, "Search query is required")
		return
	}

	notes, err := notesService.Search(c.Request.Context(), userID, query)
	if err != nil {
		utils.TrackError("internal")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Success(c, gin.H{"notes": notes})
}
