package sitecontent

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thecanopi/The-Canopi-Website/internal/httpx"
	"github.com/thecanopi/The-Canopi-Website/internal/middleware"
	"github.com/thecanopi/The-Canopi-Website/internal/transport"
)

type Handler struct {
	store *Store
	log   *slog.Logger
}

func NewHandler(store *Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) PublicGet(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	key := strings.TrimSpace(chi.URLParam(r, "key"))
	if key == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing section key", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	section, err := h.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "content section not found", nil)
			return
		}
		log.Error("site content get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteData(w, http.StatusOK, section)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	sections, err := h.store.List(ctx)
	if err != nil {
		log.Error("admin site content list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, transport.Envelope{
		"ok":    true,
		"data":  sections,
		"count": len(sections),
	})
}

type upsertRequest struct {
	Content json.RawMessage `json:"content"`
}

func (h *Handler) AdminUpsert(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	key := strings.TrimSpace(chi.URLParam(r, "key"))
	if key == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing section key", nil)
		return
	}

	var req upsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin site content upsert: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if len(req.Content) == 0 {
		transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"content": "required"})
		return
	}

	updatedBy := ""
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		updatedBy = user.Email
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	section, err := h.store.Upsert(ctx, key, req.Content, updatedBy)
	if err != nil {
		log.Error("admin site content upsert: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin site content upsert: ok", slog.String("section_key", key))
	transport.WriteData(w, http.StatusOK, section)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
