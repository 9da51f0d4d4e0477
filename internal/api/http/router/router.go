// Package router wires handlers and middleware into the HTTP route table.
package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nqhuy/kanban-server/internal/api/http/handler"
	"github.com/nqhuy/kanban-server/internal/api/http/middleware"
	"github.com/nqhuy/kanban-server/internal/logger"
	"github.com/nqhuy/kanban-server/internal/model"
	"github.com/nqhuy/kanban-server/internal/service"
)

// Router assembles the HTTP API: public auth endpoints, then everything
// else behind the bearer-token request gate.
type Router struct {
	authService      *service.Auth
	userService      *service.User
	workspaceService *service.Workspace
	boardService     *service.Board
	tokenManager     model.TokenManager
	userStore        model.UserStore
	contextManager   model.ContextManager
	clientURL        string
	logger           *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	userService *service.User,
	workspaceService *service.Workspace,
	boardService *service.Board,
	tokenManager model.TokenManager,
	userStore model.UserStore,
	contextManager model.ContextManager,
	clientURL string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:      authService,
		userService:      userService,
		workspaceService: workspaceService,
		boardService:     boardService,
		tokenManager:     tokenManager,
		userStore:        userStore,
		contextManager:   contextManager,
		clientURL:        clientURL,
		logger:           logger,
	}
}

// Register builds the route table with logging and CORS on every route and
// authentication on everything outside /api/auth.
func (r *Router) Register() *mux.Router {
	root := mux.NewRouter()
	root.Use(middleware.NewLogging(r.logger).Handler)
	root.Use(middleware.NewCORS(r.clientURL).Handler)

	root.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Server is running successfully!"}`))
	}).Methods(http.MethodGet)

	authHandler := handler.NewAuth(r.authService, r.logger)
	auth := root.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)

	protected := root.PathPrefix("/api").Subrouter()
	protected.Use(middleware.NewAuthenticate(r.tokenManager, r.userStore, r.contextManager, r.logger).Handler)

	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)
	protected.HandleFunc("/users/me", userHandler.Me).Methods(http.MethodGet)
	protected.HandleFunc("/users/me", userHandler.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/users/me/avatar", userHandler.UploadAvatar).Methods(http.MethodPost)
	protected.HandleFunc("/users/test", userHandler.Test).Methods(http.MethodGet)

	workspaceHandler := handler.NewWorkspace(r.workspaceService, r.contextManager, r.logger)
	protected.HandleFunc("/workspaces", workspaceHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/workspaces", workspaceHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/workspaces/{id}", workspaceHandler.Get).Methods(http.MethodGet)

	boardHandler := handler.NewBoard(r.boardService, r.contextManager, r.logger)
	protected.HandleFunc("/boards", boardHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/boards", boardHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/boards/{id}", boardHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/boards/{id}", boardHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/boards/{id}", boardHandler.Delete).Methods(http.MethodDelete)

	return root
}
