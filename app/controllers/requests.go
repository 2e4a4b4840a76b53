package controllers

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// RegisterRequest is the registration payload. Malformed input is rejected
// with 422 before it reaches the services.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Username  string `json:"username" validate:"required,min=2,max=255"`
	FirstName string `json:"first_name" validate:"max=255"`
	LastName  string `json:"last_name" validate:"max=255"`
	Password  string `json:"password" validate:"required,max=255"`
}

// PostRequest is the payload for creating and updating posts.
type PostRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"max=500"`
}

// CommentRequest is the payload for creating and updating comments.
type CommentRequest struct {
	Commentary string `json:"commentary" validate:"required,max=500"`
}
