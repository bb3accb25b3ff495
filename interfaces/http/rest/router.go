package rest

import (
	"net/http"

	"mynotes-backend/application/notes"
	"mynotes-backend/infrastructure/config"
	"mynotes-backend/interfaces/http/rest/handlers"
	"mynotes-backend/interfaces/http/rest/middleware"
	apperrors "mynotes-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg     *config.Config
	service *notes.Service
	logger  *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, service *notes.Service, logger *zap.Logger) *Router {
	return &Router{
		cfg:     cfg,
		service: service,
		logger:  logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	errorOut := apperrors.NewErrorHandler(rt.logger, rt.cfg.IsDevelopment())

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(errorOut.Middleware)
	router.Use(middleware.Logger(rt.logger))

	// Every response carries permissive cross-origin headers, errors
	// included.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errorOut.Handle(w, r, apperrors.NewMethodNotAllowedError(r.Method))
	})

	// Health check
	router.Get("/health", rt.healthCheck)

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.cfg, rt.logger))

		noteHandler := handlers.NewNoteHandler(rt.service, errorOut, rt.logger)
		r.Route("/notes", func(r chi.Router) {
			r.Post("/", noteHandler.CreateNote)
			r.Get("/", noteHandler.ListNotes)
			r.Put("/{id}", noteHandler.UpdateNote)
			r.Delete("/{id}", noteHandler.DeleteNote)
		})

		fileHandler := handlers.NewFileHandler(rt.service, errorOut, rt.logger)
		r.Route("/files", func(r chi.Router) {
			r.Post("/", fileHandler.RequestUpload)
			r.Get("/{id}", fileHandler.RequestDownload)
		})
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
