package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/quill-server/internal/api/rest/handler"
	"github.com/dtroode/quill-server/internal/api/rest/middleware"
	"github.com/dtroode/quill-server/internal/config"
	"github.com/dtroode/quill-server/internal/logger"
	"github.com/dtroode/quill-server/internal/model"
)

// Router wires handlers and middleware into the HTTP route tree.
type Router struct {
	authService    handler.AuthService
	postService    handler.PostService
	commentService handler.CommentService
	likeService    handler.LikeService
	db             handler.Pinger
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	rateLimiter    *middleware.RateLimiter
	cfg            Config
	logger         *logger.Logger
}

// Config holds the transport settings the router needs.
type Config struct {
	CORSOrigin    string
	MaxCoverBytes int64
	RateLimit     config.RateLimit
}

// Services groups the domain services exposed over HTTP.
type Services struct {
	Auth    handler.AuthService
	Post    handler.PostService
	Comment handler.CommentService
	Like    handler.LikeService
	DB      handler.Pinger
}

// New creates new Router instance.
func New(
	services Services,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	rateLimiter *middleware.RateLimiter,
	cfg Config,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    services.Auth,
		postService:    services.Post,
		commentService: services.Comment,
		likeService:    services.Like,
		db:             services.DB,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		rateLimiter:    rateLimiter,
		cfg:            cfg,
		logger:         logger,
	}
}

// Register builds the handler for every route.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimw.RealIP)
	mux.Use(middleware.Recovery(r.logger))
	mux.Use(logging.Handle)
	mux.Use(middleware.CORS(r.cfg.CORSOrigin))

	health := handler.NewHealth(r.db, r.logger)
	mux.Get("/health", health.Check)

	mux.Route("/api", func(api chi.Router) {
		r.registerAuthRoutes(api)

		generalLimit, generalBurst := middleware.PerMinute(r.cfg.RateLimit.GeneralPerMin)

		api.Group(func(g chi.Router) {
			g.Use(r.rateLimiter.Limit("general", generalLimit, generalBurst))
			r.registerPublicRoutes(g, authenticate)
			r.registerBlogRoutes(g, authenticate)
		})
	})

	return mux
}

func (r *Router) registerAuthRoutes(api chi.Router) {
	authHandler := handler.NewAuth(r.authService, r.logger)

	authLimit, authBurst := middleware.PerMinute(r.cfg.RateLimit.AuthPerMin)
	refreshLimit, refreshBurst := middleware.PerMinute(r.cfg.RateLimit.RefreshPerMin)

	api.Route("/auth", func(auth chi.Router) {
		auth.With(r.rateLimiter.Limit("auth", authLimit, authBurst)).Post("/register", authHandler.Register)
		auth.With(r.rateLimiter.Limit("auth", authLimit, authBurst)).Post("/login", authHandler.Login)
		auth.With(r.rateLimiter.Limit("refresh", refreshLimit, refreshBurst)).Post("/refresh", authHandler.Refresh)
	})
}

func (r *Router) registerPublicRoutes(api chi.Router, authenticate *middleware.Authenticate) {
	postHandler := handler.NewPost(r.postService, r.contextManager, r.cfg.MaxCoverBytes, r.logger)

	api.Route("/public", func(pub chi.Router) {
		pub.With(authenticate.Optional).Get("/feed", postHandler.Feed)
		pub.With(authenticate.Optional).Get("/blogs/{slug}", postHandler.GetBySlug)
		pub.Get("/blogs/{slug}/cover", postHandler.GetCover)
	})
}

func (r *Router) registerBlogRoutes(api chi.Router, authenticate *middleware.Authenticate) {
	postHandler := handler.NewPost(r.postService, r.contextManager, r.cfg.MaxCoverBytes, r.logger)
	commentHandler := handler.NewComment(r.commentService, r.contextManager, r.logger)
	likeHandler := handler.NewLike(r.likeService, r.contextManager, r.logger)

	api.Route("/blogs", func(blogs chi.Router) {
		blogs.Get("/{id}/comments", commentHandler.List)

		blogs.Group(func(owned chi.Router) {
			owned.Use(authenticate.Required)

			owned.Post("/", postHandler.Create)
			owned.Get("/", postHandler.ListMine)
			owned.Patch("/{id}", postHandler.Update)
			owned.Delete("/{id}", postHandler.Delete)
			owned.Put("/{id}/cover", postHandler.UploadCover)

			owned.Post("/{id}/comments", commentHandler.Create)
			owned.Delete("/{id}/comments/{commentId}", commentHandler.Delete)

			owned.Post("/{id}/like", likeHandler.Like)
			owned.Delete("/{id}/like", likeHandler.Unlike)
		})
	})
}
