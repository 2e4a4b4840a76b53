package services

import "simpleblog/app/models"

// Authorization rules are pure predicates over a resolved identity and an
// entity. They are evaluated before every mutating operation.

// CanModifyPost reports whether the user owns the post.
func CanModifyPost(user *models.User, post *models.Post) bool {
	return user.ID == post.OwnerID
}

// CanModifyComment reports whether the user authored the comment.
func CanModifyComment(user *models.User, comment *models.Comment) bool {
	return user.ID == comment.AuthorID
}

// CanComment reports whether the user may comment on the post. An owner
// cannot comment on their own post.
func CanComment(user *models.User, post *models.Post) bool {
	return user.ID != post.OwnerID
}
