package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkworks/contentforge/internal/core/domain"
	"github.com/inkworks/contentforge/internal/core/ports"
)

// PostService implements owner-scoped CRUD on posts.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

func validatePostFields(title, content string) error {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > domain.MaxTitleLength {
		return domain.ErrValidation
	}
	if strings.TrimSpace(content) == "" {
		return domain.ErrValidation
	}
	return nil
}

// Create persists a new post owned by authorID.
func (s *PostService) Create(ctx context.Context, title, content, authorID string) (*domain.Post, error) {
	if err := validatePostFields(title, content); err != nil {
		return nil, err
	}
	if authorID == "" {
		return nil, domain.ErrUnauthenticated
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author", authorID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author", authorID).Msg("post created")
	return created, nil
}

// ListByAuthor returns all posts owned by authorID, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error) {
	if authorID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByAuthor(ctx, authorID)
}

// Get returns a post by id. No ownership check: single-post reads are public
// so generated content can be shared by link.
func (s *PostService) Get(ctx context.Context, postID string) (*domain.Post, error) {
	if !domain.IsValidPostID(postID) {
		return nil, domain.ErrInvalidPostID
	}
	return s.repo.FindByID(ctx, postID)
}

// Update applies new title/content to a post. Only the owner may update;
// anyone else gets domain.ErrForbidden and the post is left untouched.
func (s *PostService) Update(ctx context.Context, postID, callerID string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.resolveOwned(ctx, postID, callerID)
	if err != nil {
		return nil, err
	}

	if err := validatePostFields(input.Title, input.Content); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, post.ID, input.Title, input.Content)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Str("author", callerID).Msg("post updated")
	return updated, nil
}

// Delete removes a post. Repeated deletes are not silently absorbed: once the
// record is gone, further calls fail with domain.ErrPostNotFound.
func (s *PostService) Delete(ctx context.Context, postID, callerID string) error {
	post, err := s.resolveOwned(ctx, postID, callerID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, post.ID); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", post.ID).Str("author", callerID).Msg("post deleted")
	return nil
}

// resolveOwned fetches a post and enforces that callerID is its owner.
func (s *PostService) resolveOwned(ctx context.Context, postID, callerID string) (*domain.Post, error) {
	if !domain.IsValidPostID(postID) {
		return nil, domain.ErrInvalidPostID
	}
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != callerID {
		return nil, domain.ErrForbidden
	}
	return post, nil
}
