package meetings

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
	SendMeetingNotification(ctx context.Context, n notifications.MeetingNotification) (string, error)
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

func (h *Handler) PublicListSlots(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	slots, err := h.service.ListAvailableSlots(ctx)
	if err != nil {
		log.Error("meeting slots public list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteData(w, http.StatusOK, slots)
}

func (h *Handler) PublicBook(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req BookingRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("meeting booking: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("meeting booking: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	request, err := h.service.Book(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			transport.WriteError(w, http.StatusNotFound, "meeting slot not found", nil)
		case errors.Is(err, ErrSlotTaken):
			transport.WriteError(w, http.StatusConflict, "meeting slot already booked", nil)
		default:
			log.Error("meeting booking: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		}
		return
	}

	h.notifyBooking(request)

	log.Info("meeting booking: stored", slog.String("meeting_request_id", request.ID))
	transport.WriteData(w, http.StatusCreated, request)
}

// notifyBooking emails the site owners in the background; a failed email
// never fails the booking.
func (h *Handler) notifyBooking(request MeetingRequest) {
	if h.notifier == nil {
		return
	}
	n := notifications.MeetingNotification{
		Name:    request.Name,
		Email:   request.Email,
		Company: derefOr(request.Company, ""),
		Topic:   derefOr(request.Topic, ""),
	}
	if request.Slot != nil {
		n.Date = request.Slot.Date
		n.Time = request.Slot.StartTime
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := h.notifier.SendMeetingNotification(ctx, n); err != nil {
			h.log.Warn("meeting booking: notification failed", slog.String("error", err.Error()))
		}
	}()
}

func (h *Handler) AdminListSlots(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	slots, err := h.service.ListAllSlots(ctx)
	if err != nil {
		log.Error("admin meeting slots list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, transport.Envelope{
		"ok":    true,
		"data":  slots,
		"count": len(slots),
	})
}

func (h *Handler) AdminCreateSlot(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateSlotRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin meeting slot create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin meeting slot create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	slot, err := h.service.CreateSlot(ctx, req)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"end_time": "must be after start_time"})
			return
		}
		log.Error("admin meeting slot create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin meeting slot create: ok", slog.String("slot_id", slot.ID))
	transport.WriteData(w, http.StatusCreated, slot)
}

func (h *Handler) AdminDeleteSlot(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteSlot(ctx, id); err != nil {
		log.Error("admin meeting slot delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteOK(w)
}

func (h *Handler) AdminListRequests(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	requests, err := h.service.ListRequests(ctx)
	if err != nil {
		log.Error("admin meeting requests list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, transport.Envelope{
		"ok":    true,
		"data":  requests,
		"count": len(requests),
	})
}

func (h *Handler) AdminUpdateRequest(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	var input UpdateRequestInput
	if err := httpx.DecodeJSON(r.Body, &input); err != nil {
		log.Warn("admin meeting request update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(input); err != nil {
		log.Warn("admin meeting request update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	request, err := h.service.UpdateRequest(ctx, id, input)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			transport.WriteError(w, http.StatusNotFound, "meeting request not found", nil)
			return
		}
		log.Error("admin meeting request update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteData(w, http.StatusOK, request)
}

func (h *Handler) AdminDeleteRequest(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteRequest(ctx, id); err != nil {
		log.Error("admin meeting request delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteOK(w)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
