package controllers

import (
	"encoding/json"
	"net/http"

	"simpleblog/app/models"
)

const timeLayout = "2006-01-02 15:04:05"

// UserResponse is the read-only projection of a user. The password digest
// is never part of it.
type UserResponse struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	RegisteredAt string `json:"registered_at"`
	IsActive     bool   `json:"is_active"`
	IsSuperuser  bool   `json:"is_superuser"`
}

// UserSummary is the short owner/author projection embedded in posts and
// comments.
type UserSummary struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type PostResponse struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
	OwnerID   uint         `json:"owner_id"`
	Owner     *UserSummary `json:"owner,omitempty"`
}

type CommentResponse struct {
	ID         uint          `json:"id"`
	Commentary string        `json:"commentary"`
	CreatedAt  string        `json:"created_at"`
	UpdatedAt  string        `json:"updated_at"`
	PostID     uint          `json:"post_id"`
	AuthorID   uint          `json:"author_id"`
	Author     *UserSummary  `json:"author,omitempty"`
	Post       *PostResponse `json:"post,omitempty"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type TokenRefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		RegisteredAt: u.RegisteredAt.Format(timeLayout),
		IsActive:     u.IsActive,
		IsSuperuser:  u.IsSuperuser,
	}
}

func newUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func newPostResponse(p *models.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt.Format(timeLayout),
		UpdatedAt: p.UpdatedAt.Format(timeLayout),
		OwnerID:   p.OwnerID,
		Owner:     newUserSummary(p.Owner),
	}
}

func newCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:         c.ID,
		Commentary: c.Commentary,
		CreatedAt:  c.CreatedAt.Format(timeLayout),
		UpdatedAt:  c.UpdatedAt.Format(timeLayout),
		PostID:     c.PostID,
		AuthorID:   c.AuthorID,
		Author:     newUserSummary(c.Author),
	}
	if c.Post != nil {
		post := newPostResponse(c.Post)
		resp.Post = &post
	}
	return resp
}

// Helpers for consistent response handling.

func sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func sendDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func sendMessage(w http.ResponseWriter, message string) {
	sendJSON(w, map[string]string{"message": message})
}
