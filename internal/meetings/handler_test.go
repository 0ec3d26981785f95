package meetings

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/thecanopi/The-Canopi-Website/internal/validation"
)

func newMeetingsRouter(repo Repository) chi.Router {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(NewService(repo), validation.New(), log, nil)

	r := chi.NewRouter()
	r.Get("/api/meeting-slots", h.PublicListSlots)
	r.Post("/api/meeting-request", h.PublicBook)
	r.Post("/api/admin/meeting-slots", h.AdminCreateSlot)
	r.Patch("/api/admin/meeting-requests/{id}", h.AdminUpdateRequest)
	return r
}

func do(t *testing.T, router chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminCreateSlotValidatesDateAndClock(t *testing.T) {
	router := newMeetingsRouter(newFakeMeetingsRepo())

	rec := do(t, router, http.MethodPost, "/api/admin/meeting-slots", map[string]string{
		"date":       "01/09/2026",
		"start_time": "10am",
		"end_time":   "11am",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "validation error", body.Error)
	require.Equal(t, "date", body.Details["date"])
	require.Equal(t, "clock", body.Details["start_time"])
}

func TestPublicListSlotsHidesBooked(t *testing.T) {
	repo := newFakeMeetingsRepo()
	router := newMeetingsRouter(repo)
	svc := NewService(repo)

	open, err := svc.CreateSlot(context.Background(), CreateSlotRequest{Date: "2026-09-01", StartTime: "10:00", EndTime: "10:30"})
	require.NoError(t, err)
	taken, err := svc.CreateSlot(context.Background(), CreateSlotRequest{Date: "2026-09-01", StartTime: "11:00", EndTime: "11:30"})
	require.NoError(t, err)
	_, err = svc.Book(context.Background(), BookingRequest{Name: "Ada", Email: "a@b.c", SlotID: taken.ID})
	require.NoError(t, err)

	rec := do(t, router, http.MethodGet, "/api/meeting-slots", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []MeetingSlot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, open.ID, body.Data[0].ID)
}

func TestPublicBookConflictOnTakenSlot(t *testing.T) {
	repo := newFakeMeetingsRepo()
	router := newMeetingsRouter(repo)
	svc := NewService(repo)

	slot, err := svc.CreateSlot(context.Background(), CreateSlotRequest{Date: "2026-09-01", StartTime: "10:00", EndTime: "10:30"})
	require.NoError(t, err)

	rec := do(t, router, http.MethodPost, "/api/meeting-request", map[string]string{
		"name": "Ada", "email": "ada@example.com", "slot_id": slot.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/meeting-request", map[string]string{
		"name": "Bob", "email": "bob@example.com", "slot_id": slot.ID,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "meeting slot already booked")
}

func TestPublicBookUnknownSlotIs404(t *testing.T) {
	router := newMeetingsRouter(newFakeMeetingsRepo())

	rec := do(t, router, http.MethodPost, "/api/meeting-request", map[string]string{
		"name": "Ada", "email": "ada@example.com", "slot_id": "0d9f74a8-5c56-44bb-9c33-123456789abc",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "meeting slot not found")
}

func TestAdminUpdateRequestMissingRowIs404(t *testing.T) {
	router := newMeetingsRouter(newFakeMeetingsRepo())

	rec := do(t, router, http.MethodPatch, "/api/admin/meeting-requests/0d9f74a8-5c56-44bb-9c33-123456789abc", map[string]string{
		"status": "done",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}
