package handler

import "time"

type savePostRequest struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

type updatePostRequest struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// postResponse is the transport-layer view of a post, intentionally separate
// from the domain type so the JSON contract is not coupled to internal
// changes.
type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type postEnvelope struct {
	Success bool         `json:"success"`
	Data    postResponse `json:"data"`
}

type postListEnvelope struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Data    []postResponse `json:"data"`
}

type deleteEnvelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Message string         `json:"message"`
}
