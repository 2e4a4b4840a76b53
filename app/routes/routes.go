package routes

import (
	"net/http"

	"simpleblog/app/auth"
	"simpleblog/app/controllers"
	"simpleblog/app/middleware"
	"simpleblog/app/repositories"
	"simpleblog/app/services"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// SetupRoutes wires the full API on top of a gorm database.
func SetupRoutes(db *gorm.DB, tokens *auth.TokenService) *mux.Router {
	userRepo := repositories.NewGormUserRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	return SetupRoutesWithRepos(userRepo, postRepo, commentRepo, tokens)
}

// SetupRoutesWithRepos wires the API against explicit repositories; tests
// pass the in-memory mocks here.
func SetupRoutesWithRepos(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	tokens *auth.TokenService,
) *mux.Router {
	userService := services.NewUserService(userRepo, tokens)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	resolver := services.NewIdentityResolver(tokens, userRepo)

	userController := controllers.NewUserController(userService, tokens)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)

	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	authRequired := middleware.RequireAuth(resolver)
	api := router.PathPrefix("/api").Subrouter()

	// User endpoints
	api.HandleFunc("/user/register/", userController.Register).Methods("POST")
	api.HandleFunc("/user/token/", userController.Token).Methods("POST")
	api.HandleFunc("/user/refresh-token/", userController.RefreshToken).Methods("POST")
	api.Handle("/user/me/", authRequired(http.HandlerFunc(userController.Me))).Methods("GET")
	if tokens.RevocationEnabled() {
		api.Handle("/user/logout/", authRequired(http.HandlerFunc(userController.Logout))).Methods("POST")
	}

	// Post endpoints
	api.HandleFunc("/posts/", postController.Index).Methods("GET")
	api.Handle("/posts/", authRequired(http.HandlerFunc(postController.Create))).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}", postController.Show).Methods("GET")
	api.Handle("/posts/{id:[0-9]+}", authRequired(http.HandlerFunc(postController.Update))).Methods("PUT")
	api.Handle("/posts/{id:[0-9]+}", authRequired(http.HandlerFunc(postController.Delete))).Methods("DELETE")

	// Comment endpoints
	api.HandleFunc("/comments/", commentController.Index).Methods("GET")
	api.HandleFunc("/posts/{postId:[0-9]+}/comments/", commentController.ListByPost).Methods("GET")
	api.Handle("/posts/{postId:[0-9]+}/comments/", authRequired(http.HandlerFunc(commentController.Create))).Methods("POST")
	api.Handle("/posts/{postId:[0-9]+}/comments/{commentId:[0-9]+}", authRequired(http.HandlerFunc(commentController.Update))).Methods("PUT")
	api.Handle("/posts/{postId:[0-9]+}/comments/{commentId:[0-9]+}", authRequired(http.HandlerFunc(commentController.Delete))).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the
// given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
