package ports

import (
	"context"

	"github.com/inkworks/contentforge/internal/core/domain"
)

// UpdatePostInput carries the mutable fields of a post.
type UpdatePostInput struct {
	Title   string
	Content string
}

// PostService defines use-case operations for posts. Write paths require the
// verified caller id; Get is intentionally public so generated content can be
// shared by link.
type PostService interface {
	Create(ctx context.Context, title, content, authorID string) (*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error)
	Get(ctx context.Context, postID string) (*domain.Post, error)
	Update(ctx context.Context, postID, callerID string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, postID, callerID string) error
}
