package services

import (
	"context"
	"errors"
	"time"

	"simpleblog/app/models"
	"simpleblog/app/repositories"
)

// ErrForbidden means the actor is known but the business rules reject the
// operation, e.g. commenting on your own post.
var ErrForbidden = errors.New("forbidden")

// CommentService handles business logic for comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment creates a comment by the given author. The post must exist
// and the author must not be the post's owner.
func (s *CommentService) CreateComment(ctx context.Context, author *models.User, postID uint, commentary string) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !CanComment(author, post) {
		return nil, ErrForbidden
	}

	now := time.Now()
	comment := &models.Comment{
		Commentary: commentary,
		CreatedAt:  now,
		UpdatedAt:  now,
		PostID:     post.ID,
		AuthorID:   author.ID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Author = author
	return comment, nil
}

// UpdateComment updates a comment through the author-scoped lookup: the
// comment must exist under the given post and belong to the actor, or the
// whole thing is ErrNotFound.
func (s *CommentService) UpdateComment(ctx context.Context, postID, commentID uint, actor *models.User, commentary string) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetScoped(ctx, postID, commentID, actor.ID)
	if err != nil {
		return nil, err
	}
	if !CanModifyComment(actor, comment) {
		return nil, repositories.ErrNotFound
	}

	comment.Commentary = commentary
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment deletes a comment with the same scoping as UpdateComment.
func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID uint, actor *models.User) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	comment, err := s.commentRepo.GetScoped(ctx, postID, commentID, actor.ID)
	if err != nil {
		return err
	}
	if !CanModifyComment(actor, comment) {
		return repositories.ErrNotFound
	}

	return s.commentRepo.Delete(ctx, comment)
}

// ListPostComments retrieves all comments for a post; the post must exist.
func (s *CommentService) ListPostComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// ListComments retrieves every comment with author and post attached.
func (s *CommentService) ListComments(ctx context.Context) ([]*models.Comment, error) {
	return s.commentRepo.List(ctx)
}
