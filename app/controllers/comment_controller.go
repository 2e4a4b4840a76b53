package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"simpleblog/app/middleware"
	"simpleblog/app/repositories"
	"simpleblog/app/services"
)

// CommentController handles HTTP requests for comments.
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController.
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Index handles GET /comments/: every comment with author and post
// attached. Unauthenticated.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListComments(r.Context())
	if err != nil {
		slog.Error("list comments failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, newCommentResponse(comment))
	}
	sendJSON(w, responses)
}

// ListByPost handles GET /posts/{postId}/comments/.
func (cc *CommentController) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}

	comments, err := cc.commentService.ListPostComments(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendDetail(w, http.StatusNotFound, "Post does not exist")
			return
		}
		slog.Error("list post comments failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, newCommentResponse(comment))
	}
	sendJSON(w, responses)
}

// Create handles POST /posts/{postId}/comments/. Owners cannot comment on
// their own posts; that surfaces as a 400.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		sendDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendDetail(w, http.StatusUnprocessableEntity, "Invalid JSON: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		sendDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	comment, err := cc.commentService.CreateComment(r.Context(), user, postID, req.Commentary)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			sendDetail(w, http.StatusNotFound, "Post does not exist")
		case errors.Is(err, services.ErrForbidden):
			sendDetail(w, http.StatusBadRequest, "You cannot comment on your own post")
		default:
			slog.Error("create comment failed", "error", err)
			sendDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	sendJSON(w, newCommentResponse(comment))
}

// Update handles PUT /posts/{postId}/comments/{commentId}. The lookup is
// author-scoped, so a non-author sees a 404.
func (cc *CommentController) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		sendDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}
	commentID, ok := pathID(w, r, "commentId")
	if !ok {
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendDetail(w, http.StatusUnprocessableEntity, "Invalid JSON: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		sendDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if _, err := cc.commentService.UpdateComment(r.Context(), postID, commentID, user, req.Commentary); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendDetail(w, http.StatusNotFound, "Comment not found")
			return
		}
		slog.Error("update comment failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	sendMessage(w, "Comment Successfully Updated")
}

// Delete handles DELETE /posts/{postId}/comments/{commentId}, with the
// same author-scoped semantics as Update.
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		sendDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}
	commentID, ok := pathID(w, r, "commentId")
	if !ok {
		return
	}

	if err := cc.commentService.DeleteComment(r.Context(), postID, commentID, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendDetail(w, http.StatusNotFound, "Comment not found")
			return
		}
		slog.Error("delete comment failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
