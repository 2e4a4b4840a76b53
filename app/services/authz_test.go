package services

import (
	"testing"

	"simpleblog/app/models"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizationRules(t *testing.T) {
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}
	post := &models.Post{ID: 10, OwnerID: 1}
	comment := &models.Comment{ID: 20, PostID: 10, AuthorID: 2}

	t.Run("only the owner can modify a post", func(t *testing.T) {
		assert.True(t, CanModifyPost(owner, post))
		assert.False(t, CanModifyPost(other, post))
	})

	t.Run("only the author can modify a comment", func(t *testing.T) {
		assert.True(t, CanModifyComment(other, comment))
		assert.False(t, CanModifyComment(owner, comment))
	})

	t.Run("owner cannot comment on own post", func(t *testing.T) {
		assert.False(t, CanComment(owner, post))
		assert.True(t, CanComment(other, post))
	})
}
