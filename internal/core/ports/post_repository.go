package ports

import (
	"context"

	"github.com/inkworks/contentforge/internal/core/domain"
)

// PostRepository defines persistence operations for posts. Implementations
// return domain.ErrPostNotFound when no record matches an id.
type PostRepository interface {
	Insert(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// FindByAuthor returns all posts owned by authorID, newest first by
	// creation time. Same-instant records have no defined relative order.
	FindByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error)
	Update(ctx context.Context, id, title, content string) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
