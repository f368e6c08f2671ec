package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/blakestevenson/mediacatalog/internal/httputil"
	"github.com/blakestevenson/mediacatalog/internal/media"
	"github.com/blakestevenson/mediacatalog/internal/validation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var errNoOwner = errors.New("request carries no owner id")

// MediaHandler handles media-related HTTP requests
type MediaHandler struct {
	service media.Service
	logger  *zap.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(service media.Service, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		service: service,
		logger:  logger,
	}
}

// ListMediaItems handles GET /media
func (h *MediaHandler) ListMediaItems(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		httputil.RespondError(w, r, h.logger, errNoOwner)
		return
	}

	var filter media.Filter
	if kindStr := r.URL.Query().Get("kind"); kindStr != "" {
		kind, err := media.ParseKind(kindStr)
		if err != nil {
			httputil.RespondError(w, r, h.logger, validation.NewRequestError(err))
			return
		}
		filter.Kind = &kind
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status, err := media.ParseWatchStatus(statusStr)
		if err != nil {
			httputil.RespondError(w, r, h.logger, validation.NewRequestError(err))
			return
		}
		filter.Status = &status
	}

	items, err := h.service.ListItems(r.Context(), owner, filter)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, items)
}

// CreateMediaItem handles POST /media
func (h *MediaHandler) CreateMediaItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		httputil.RespondError(w, r, h.logger, errNoOwner)
		return
	}

	var params media.CreateParams
	if err := httputil.DecodeJSON(r, &params); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	item, err := h.service.CreateItem(r.Context(), owner, params)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, item)
}

// GetMediaItem handles GET /media/{id}
func (h *MediaHandler) GetMediaItem(w http.ResponseWriter, r *http.Request) {
	owner, id, err := h.target(r)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	item, err := h.service.GetItem(r.Context(), owner, id)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// UpdateMediaItem handles PUT /media/{id}
func (h *MediaHandler) UpdateMediaItem(w http.ResponseWriter, r *http.Request) {
	owner, id, err := h.target(r)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	var params media.UpdateParams
	if err := httputil.DecodeJSON(r, &params); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), owner, id, params)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// UpdateMediaStatus handles PATCH /media/{id}/status
func (h *MediaHandler) UpdateMediaStatus(w http.ResponseWriter, r *http.Request) {
	owner, id, err := h.target(r)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	var params media.StatusParams
	if err := httputil.DecodeJSON(r, &params); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	item, err := h.service.UpdateStatus(r.Context(), owner, id, params)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}

// DeleteMediaItem handles DELETE /media/{id}
func (h *MediaHandler) DeleteMediaItem(w http.ResponseWriter, r *http.Request) {
	owner, id, err := h.target(r)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteItem(r.Context(), owner, id); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}

// target resolves the caller and the {id} path parameter
func (h *MediaHandler) target(r *http.Request) (int64, int64, error) {
	owner, ok := ownerID(r)
	if !ok {
		return 0, 0, errNoOwner
	}
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		return 0, 0, err
	}
	return owner, id, nil
}

// parseID parses an integer id. A non-numeric id is a request error; any
// integer is accepted and simply matches nothing when out of range.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, validation.NewRequestError(fmt.Errorf("invalid id %q: %w", s, err))
	}
	return id, nil
}
