package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"simpleblog/app/middleware"
	"simpleblog/app/repositories"
	"simpleblog/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts.
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController.
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles GET /posts/. Listing is unauthenticated.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts(r.Context())
	if err != nil {
		slog.Error("list posts failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, newPostResponse(post))
	}
	sendJSON(w, responses)
}

// Show handles GET /posts/{id}.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	post, err := pc.postService.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendDetail(w, http.StatusNotFound, "Post does not exist")
			return
		}
		slog.Error("get post failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	sendJSON(w, newPostResponse(post))
}

// Create handles POST /posts/. Requires a bearer token.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		sendDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendDetail(w, http.StatusUnprocessableEntity, "Invalid JSON: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		sendDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	post, err := pc.postService.CreatePost(r.Context(), user, req.Title, req.Content)
	if err != nil {
		slog.Error("create post failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	sendJSON(w, newPostResponse(post))
}

// Update handles PUT /posts/{id}. The lookup is owner-scoped: a post owned
// by someone else is a 404, not a 403.
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		sendDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendDetail(w, http.StatusUnprocessableEntity, "Invalid JSON: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		sendDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if _, err := pc.postService.UpdatePost(r.Context(), id, user, req.Title, req.Content); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendDetail(w, http.StatusNotFound, "Post not found")
			return
		}
		slog.Error("update post failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	sendMessage(w, "Post Successfully Updated")
}

// Delete handles DELETE /posts/{id}, with the same owner-scoped semantics
// as Update.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		sendDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := pc.postService.DeletePost(r.Context(), id, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendDetail(w, http.StatusNotFound, "Post not found")
			return
		}
		slog.Error("delete post failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a numeric path variable, replying 404 on garbage since the
// routes only match digits anyway.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		sendDetail(w, http.StatusNotFound, "Not found")
		return 0, false
	}
	return uint(id), true
}
