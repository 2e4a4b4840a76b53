package repositories

import (
	"context"

	"simpleblog/app/models"
)

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// PostRepository defines data access for posts. GetByIDAndOwner is the
// owner-scoped lookup backing update and delete: a post that exists but
// belongs to someone else is indistinguishable from an absent one.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, post *models.Post) error
}

// CommentRepository defines data access for comments. GetScoped filters on
// post id, comment id and author id together, with the same conflation of
// absence and unauthorized access as posts.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetScoped(ctx context.Context, postID, commentID, authorID uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	List(ctx context.Context) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, comment *models.Comment) error
}
