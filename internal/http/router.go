package http

import (
	"net/http"

	"github.com/blakestevenson/mediacatalog/internal/http/handlers"
	"github.com/blakestevenson/mediacatalog/internal/httputil"
	"github.com/blakestevenson/mediacatalog/internal/media"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RouterConfig holds the HTTP settings the router needs
type RouterConfig struct {
	AllowedContentTypes []string
	MaxBodyBytes        int64
	CORSOrigin          string
	OwnerID             int64
}

// NewRouter creates and configures the HTTP router
func NewRouter(mediaService media.Service, cfg RouterConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middlewareChain(cfg, logger)...)

	r.NotFound(NotFoundHandler(logger))
	r.MethodNotAllowed(MethodNotAllowedHandler(logger))

	// Handlers
	mediaHandler := handlers.NewMediaHandler(mediaService, logger)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	// Media routes
	r.Get("/media", mediaHandler.ListMediaItems)
	r.Post("/media", mediaHandler.CreateMediaItem)
	r.Get("/media/{id}", mediaHandler.GetMediaItem)
	r.Put("/media/{id}", mediaHandler.UpdateMediaItem)
	r.Patch("/media/{id}/status", mediaHandler.UpdateMediaStatus)
	r.Delete("/media/{id}", mediaHandler.DeleteMediaItem)

	return r
}

// middlewareChain lists the router middleware, outermost first. The request
// id and access log wrap the panic recovery so a recovered panic is logged
// with its request id and its 500 status.
func middlewareChain(cfg RouterConfig, logger *zap.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		LoggingMiddleware(logger),
		RecoverMiddleware(logger),
		SecurityHeadersMiddleware,
		CORSMiddleware(cfg.CORSOrigin),
		middleware.Compress(5),
		ContentTypeGate(cfg.AllowedContentTypes, logger),
		BodyLimitMiddleware(cfg.MaxBodyBytes),
		OwnerMiddleware(cfg.OwnerID),
	}
}
