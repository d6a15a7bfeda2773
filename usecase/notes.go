package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gonotes/dto"
	"gonotes/model"
	"gonotes/utils"
)

// NoteStore is the persistence contract for note records. Lookups always
// take the note ID and owning user ID together so a cross-user access is
// indistinguishable from a missing note. Find methods return (nil, nil)
// when no document matches.
type NoteStore interface {
	Insert(ctx context.Context, note *model.Note) error
	FindByIDAndUser(ctx context.Context, noteID, userID string) (*model.Note, error)
	FindByUser(ctx context.Context, userID string) ([]*model.Note, error)
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, noteID, userID string) (int64, error)
	Search(ctx context.Context, userID, query string) ([]*model.Note, error)
}

type NotesService struct {
	Notes NoteStore
}

// Create persists a new note owned by userID. Tags default to empty.
func (svc *NotesService) Create(ctx context.Context, userID, title, content string, tags []string) (*model.Note, error) {
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	note := &model.Note{
		ID:        utils.GenerateID(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Tags:      tags,
		IsPinned:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.Notes.Insert(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// List returns all notes owned by userID, pinned notes first.
func (svc *NotesService) List(ctx context.Context, userID string) ([]*model.Note, error) {
	notes, err := svc.Notes.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].IsPinned && !notes[j].IsPinned
	})
	return notes, nil
}

// Update applies the supplied fields to an owned note. Fields left nil in
// the request keep their stored values.
func (svc *NotesService) Update(ctx context.Context, noteID, userID string, updates dto.UpdateNoteRequest) (*model.Note, error) {
	note, err := svc.Notes.FindByIDAndUser(ctx, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up note: %w", err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	if updates.Title != nil {
		note.Title = *updates.Title
	}
	if updates.Content != nil {
		note.Content = *updates.Content
	}
	if updates.Tags != nil {
		note.Tags = *updates.Tags
	}
	if updates.IsPinned != nil {
		note.IsPinned = *updates.IsPinned
	}
	note.UpdatedAt = time.Now()

	if err := svc.Notes.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	utils.TrackNoteOperation("update")
	return note, nil
}

// SetPinned sets the pinned flag of an owned note to the supplied value.
func (svc *NotesService) SetPinned(ctx context.Context, noteID, userID string, pinned bool) (*model.Note, error) {
	note, err := svc.Notes.FindByIDAndUser(ctx, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up note: %w", err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	note.IsPinned = pinned
	note.UpdatedAt = time.Now()

	if err := svc.Notes.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	utils.TrackNoteOperation("pin")
	return note, nil
}

// Delete removes an owned note.
func (svc *NotesService) Delete(ctx context.Context, noteID, userID string) error {
	deleted, err := svc.Notes.Delete(ctx, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if deleted == 0 {
		return ErrNoteNotFound
	}

	utils.TrackNoteOperation("delete")
	return nil
}

// Search returns the user's notes whose title or content contains the
// query, case-insensitively.
func (svc *NotesService) Search(ctx context.Context, userID, query string) ([]*model.Note, error) {
	notes, err := svc.Notes.Search(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}

	utils.TrackNoteOperation("search")
	return notes, nil
}
