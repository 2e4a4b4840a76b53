package services

import (
	"context"
	"testing"
	"time"

	"simpleblog/app/models"
	"simpleblog/app/repositories"
	"simpleblog/app/repositories/mock"

	"github.com/stretchr/testify/assert"
)

func newTestPostService() (*PostService, *mock.UserRepository) {
	users := mock.NewUserRepository()
	posts := mock.NewPostRepository(users)
	return NewPostService(posts), users
}

func seedUser(t *testing.T, users *mock.UserRepository, email, username string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		Username:     username,
		Password:     "digest",
		RegisteredAt: time.Now(),
		IsActive:     true,
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func TestPostService(t *testing.T) {
	service, users := newTestPostService()
	ctx := context.Background()

	owner := seedUser(t, users, "owner@example.com", "owner")
	other := seedUser(t, users, "other@example.com", "other")

	t.Run("create post sets both timestamps", func(t *testing.T) {
		post, err := service.CreatePost(ctx, owner, "First Post", "Some content")
		assert.NoError(t, err)
		assert.Equal(t, uint(1), post.ID)
		assert.Equal(t, owner.ID, post.OwnerID)
		assert.False(t, post.CreatedAt.IsZero())
		assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	})

	t.Run("get post includes owner", func(t *testing.T) {
		post, err := service.GetPost(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "First Post", post.Title)
		assert.NotNil(t, post.Owner)
		assert.Equal(t, "owner", post.Owner.Username)
	})

	t.Run("get missing post", func(t *testing.T) {
		_, err := service.GetPost(ctx, 999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("update by owner refreshes updated_at", func(t *testing.T) {
		before, err := service.GetPost(ctx, 1)
		assert.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		updated, err := service.UpdatePost(ctx, 1, owner, "First Post v2", "New content")
		assert.NoError(t, err)
		assert.Equal(t, "First Post v2", updated.Title)
		assert.Equal(t, before.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	})

	t.Run("update by non-owner looks like not found", func(t *testing.T) {
		_, err := service.UpdatePost(ctx, 1, other, "Hijacked", "")
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		post, err := service.GetPost(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "First Post v2", post.Title)
	})

	t.Run("delete by non-owner looks like not found", func(t *testing.T) {
		err := service.DeletePost(ctx, 1, other)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("delete by owner", func(t *testing.T) {
		err := service.DeletePost(ctx, 1, owner)
		assert.NoError(t, err)

		_, err = service.GetPost(ctx, 1)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("list returns posts in insertion order with owners", func(t *testing.T) {
		first, err := service.CreatePost(ctx, owner, "A", "")
		assert.NoError(t, err)
		second, err := service.CreatePost(ctx, other, "B", "")
		assert.NoError(t, err)

		posts, err := service.ListPosts(ctx)
		assert.NoError(t, err)
		assert.Len(t, posts, 2)
		assert.Equal(t, first.ID, posts[0].ID)
		assert.Equal(t, second.ID, posts[1].ID)
		assert.Equal(t, "owner", posts[0].Owner.Username)
		assert.Equal(t, "other", posts[1].Owner.Username)
	})
}
