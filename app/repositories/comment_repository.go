package repositories

import (
	"context"

	"simpleblog/app/models"

	"gorm.io/gorm"
)

// GormCommentRepository is the Postgres-backed CommentRepository.
type GormCommentRepository struct {
	db *gorm.DB
}

func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(comment).Error
	})
	return translate(err)
}

// GetScoped looks up a comment by id, post and author together. A comment
// written by someone else yields ErrNotFound.
func (r *GormCommentRepository) GetScoped(ctx context.Context, postID, commentID, authorID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ? AND author_id = ?", commentID, postID, authorID).
		First(&comment).Error
	if err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (r *GormCommentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, translate(err)
	}
	return comments, nil
}

// List returns every comment with its author and post (including the
// post's owner) eagerly attached via batched preloads.
func (r *GormCommentRepository) List(ctx context.Context) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Post").
		Preload("Post.Owner").
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, translate(err)
	}
	return comments, nil
}

func (r *GormCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(comment).Error
	})
	return translate(err)
}

func (r *GormCommentRepository) Delete(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(comment).Error
	})
	return translate(err)
}
