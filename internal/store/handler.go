package store

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noren-ops/noren/internal/platform/httpx"
)

// RenameRequest updates the store's display name.
type RenameRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// Handler exposes the store settings endpoints.
type Handler struct {
	logger    *slog.Logger
	repo      *Repository
	resolver  interface{ Resolve(context.Context) uuid.UUID }
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, repo *Repository, resolver interface{ Resolve(context.Context) uuid.UUID }) *Handler {
	return &Handler{logger: logger, repo: repo, resolver: resolver, validator: validator.New()}
}

// MountRoutes registers settings routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/store", h.get)
	r.Put("/store", h.rename)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := h.resolver.Resolve(r.Context())
	s, err := h.repo.First(r.Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Resolve above creates the row lazily; an empty table here
			// means even the create failed.
			httpx.JSON(w, http.StatusOK, Store{ID: id, Name: DefaultName})
			return
		}
		h.logger.Error("load store settings", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}

func (h *Handler) rename(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "name is required")
		return
	}

	id := h.resolver.Resolve(r.Context())
	s, err := h.repo.Rename(r.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "store not found")
			return
		}
		h.logger.Error("rename store", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}
