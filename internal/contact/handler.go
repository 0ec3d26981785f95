package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thecanopi/The-Canopi-Website/internal/httpx"
	"github.com/thecanopi/The-Canopi-Website/internal/middleware"
	"github.com/thecanopi/The-Canopi-Website/internal/notifications"
	"github.com/thecanopi/The-Canopi-Website/internal/transport"
	"github.com/thecanopi/The-Canopi-Website/internal/validation"
)

type Notifier interface {
	SendInquiryNotification(ctx context.Context, n notifications.InquiryNotification) (string, error)
}

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	notifier Notifier
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, notifier Notifier) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		notifier: notifier,
	}
}

func (h *Handler) PublicCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("contact create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	inquiry, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("contact create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	if h.notifier != nil {
		n := notifications.InquiryNotification{
			Name:      inquiry.Name,
			Email:     inquiry.Email,
			Company:   deref(inquiry.Company),
			RoleTitle: deref(inquiry.RoleTitle),
			Message:   inquiry.Message,
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if _, err := h.notifier.SendInquiryNotification(ctx, n); err != nil {
				h.log.Warn("contact create: notification failed", slog.String("error", err.Error()))
			}
		}()
	}

	log.Info("contact create: stored", slog.String("inquiry_id", inquiry.ID))
	transport.WriteData(w, http.StatusCreated, inquiry)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("admin inquiries list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, transport.Envelope{
		"ok":    true,
		"data":  items,
		"count": len(items),
	})
}

func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	var req UpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin inquiry update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if req.IsRead == nil {
		transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"is_read": "required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.SetRead(ctx, id, *req.IsRead)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "inquiry not found", nil)
			return
		}
		log.Error("admin inquiry update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteData(w, http.StatusOK, item)
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		log.Error("admin inquiry delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteOK(w)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
