package dto

type CreateNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdateNoteRequest carries a partial update. Pointer fields distinguish
// "absent" from zero values.
type UpdateNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	IsPinned *bool     `json:"isPinned"`
}

// Empty reports whether no editable field was supplied
func (r *UpdateNoteRequest) Empty() bool {
	return r.Title == nil && r.Content == nil && r.Tags == nil && r.IsPinned == nil
}

type UpdatePinnedRequest struct {
	IsPinned *bool `json:"isPinned"`
}
