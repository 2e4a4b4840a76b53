package services

import (
	"context"
	"time"

	"simpleblog/app/models"
	"simpleblog/app/repositories"
)

// PostService handles business logic for blog posts.
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost creates a post owned by the given user. Both timestamps are
// set to the creation time.
func (s *PostService) CreatePost(ctx context.Context, owner *models.User, title, content string) (*models.Post, error) {
	now := time.Now()
	post := &models.Post{
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
		OwnerID:   owner.ID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	post.Owner = owner
	return post, nil
}

// GetPost retrieves a post by ID with its owner attached.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPosts retrieves all posts in insertion order with owners attached.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// UpdatePost updates a post through the owner-scoped lookup. A post that
// exists but belongs to another user surfaces as ErrNotFound. UpdatedAt
// is refreshed; CreatedAt is preserved.
func (s *PostService) UpdatePost(ctx context.Context, id uint, actor *models.User, title, content string) (*models.Post, error) {
	post, err := s.postRepo.GetByIDAndOwner(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}
	if !CanModifyPost(actor, post) {
		return nil, repositories.ErrNotFound
	}

	post.Title = title
	post.Content = content
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post through the same owner-scoped lookup as
// UpdatePost. The post's comments go with it.
func (s *PostService) DeletePost(ctx context.Context, id uint, actor *models.User) error {
	post, err := s.postRepo.GetByIDAndOwner(ctx, id, actor.ID)
	if err != nil {
		return err
	}
	if !CanModifyPost(actor, post) {
		return repositories.ErrNotFound
	}

	return s.postRepo.Delete(ctx, post)
}
