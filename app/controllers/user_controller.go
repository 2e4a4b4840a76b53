package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"simpleblog/app/auth"
	"simpleblog/app/middleware"
	"simpleblog/app/repositories"
	"simpleblog/app/services"
)

// UserController handles registration, login, token refresh and profile
// requests.
type UserController struct {
	userService *services.UserService
	tokens      *auth.TokenService
}

// NewUserController creates a new UserController.
func NewUserController(userService *services.UserService, tokens *auth.TokenService) *UserController {
	return &UserController{
		userService: userService,
		tokens:      tokens,
	}
}

// Register handles POST /user/register/.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendDetail(w, http.StatusUnprocessableEntity, "Invalid JSON: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		sendDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := uc.userService.Register(r.Context(), services.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			sendDetail(w, http.StatusConflict, "Email or username already registered")
			return
		}
		slog.Error("register failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	sendJSON(w, newUserResponse(user))
}

// Token handles POST /user/token/. Credentials arrive as form fields, with
// the email in the username field.
func (uc *UserController) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		sendDetail(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	access, refresh, err := uc.userService.Authenticate(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendDetail(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		slog.Error("login failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	sendJSON(w, TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	})
}

// RefreshToken handles POST /user/refresh-token/. The refresh token itself
// is not rotated.
func (uc *UserController) RefreshToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		sendDetail(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}
	refreshToken := r.PostFormValue("refresh_token")

	access, err := uc.tokens.Refresh(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			sendDetail(w, http.StatusUnauthorized, "Refresh token has expired")
			return
		}
		sendDetail(w, http.StatusUnauthorized, "Could not validate refresh token")
		return
	}

	sendJSON(w, TokenRefreshResponse{
		AccessToken: access,
		TokenType:   "bearer",
	})
}

// Me handles GET /user/me/.
func (uc *UserController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		sendDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	sendJSON(w, newUserResponse(user))
}

// Logout handles POST /user/logout/. Only mounted when the revocation
// store is configured; it denylists the presented access token until its
// natural expiry.
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		sendDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if err := uc.tokens.Revoke(token); err != nil {
		slog.Error("logout failed", "error", err)
		sendDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
