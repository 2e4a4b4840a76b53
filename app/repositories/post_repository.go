package repositories

import (
	"context"

	"simpleblog/app/models"

	"gorm.io/gorm"
)

// GormPostRepository is the Postgres-backed PostRepository.
type GormPostRepository struct {
	db *gorm.DB
}

func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
	return translate(err)
}

func (r *GormPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("Owner").First(&post, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// GetByIDAndOwner filters on both post id and owner id. A post owned by
// someone else yields ErrNotFound, never a forbidden signal.
func (r *GormPostRepository) GetByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&post).Error
	if err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// List returns all posts in insertion order with owners eagerly attached.
// Preload batches the owner fetch into one query, keeping query count
// bounded regardless of list size.
func (r *GormPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).Preload("Owner").Order("id").Find(&posts).Error
	if err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

func (r *GormPostRepository) Update(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(post).Error
	})
	return translate(err)
}

// Delete removes the post and its comments in a single transaction.
func (r *GormPostRepository) Delete(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
	return translate(err)
}
