package contact

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/thecanopi/The-Canopi-Website/internal/notifications"
	"github.com/thecanopi/The-Canopi-Website/internal/validation"
)

type fakeContactRepo struct {
	items map[string]Inquiry
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{items: make(map[string]Inquiry)}
}

func (f *fakeContactRepo) Create(_ context.Context, inquiry Inquiry) (Inquiry, error) {
	f.items[inquiry.ID] = inquiry
	return inquiry, nil
}

func (f *fakeContactRepo) List(_ context.Context) ([]Inquiry, error) {
	out := make([]Inquiry, 0)
	for _, i := range f.items {
		out = append(out, i)
	}
	return out, nil
}

func (f *fakeContactRepo) SetRead(_ context.Context, id string, isRead bool) (Inquiry, error) {
	item, ok := f.items[id]
	if !ok {
		return Inquiry{}, sql.ErrNoRows
	}
	item.IsRead = isRead
	f.items[id] = item
	return item, nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := f.items[id]
	delete(f.items, id)
	return ok, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notifications.InquiryNotification
	done chan struct{}
}

func (r *recordingNotifier) SendInquiryNotification(_ context.Context, n notifications.InquiryNotification) (string, error) {
	r.mu.Lock()
	r.sent = append(r.sent, n)
	r.mu.Unlock()
	close(r.done)
	return "msg-1", nil
}

func newContactRouter(repo Repository, notifier Notifier) chi.Router {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(NewService(repo), validation.New(), log, notifier)

	r := chi.NewRouter()
	r.Post("/api/contact", h.PublicCreate)
	r.Get("/api/admin/inquiries", h.AdminList)
	r.Patch("/api/admin/inquiries/{id}", h.AdminUpdate)
	r.Delete("/api/admin/inquiries/{id}", h.AdminDelete)
	return r
}

func postJSON(t *testing.T, router chi.Router, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPublicCreateStoresInquiry(t *testing.T) {
	repo := newFakeContactRepo()
	router := newContactRouter(repo, nil)

	rec := postJSON(t, router, "/api/contact", map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"company": "Lovelace Ltd",
		"message": "We need help with our data platform.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		OK   bool    `json:"ok"`
		Data Inquiry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.OK)
	require.False(t, body.Data.IsRead)
	require.Len(t, repo.items, 1)
}

func TestPublicCreateRejectsBadEmail(t *testing.T) {
	router := newContactRouter(newFakeContactRepo(), nil)

	rec := postJSON(t, router, "/api/contact", map[string]string{
		"name":    "Ada",
		"email":   "not-an-email",
		"message": "hello",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "validation error", body.Error)
	require.Equal(t, "email", body.Details["email"])
}

func TestPublicCreateNotifiesInBackground(t *testing.T) {
	notifier := &recordingNotifier{done: make(chan struct{})}
	router := newContactRouter(newFakeContactRepo(), notifier)

	rec := postJSON(t, router, "/api/contact", map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	<-notifier.done
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.sent, 1)
	require.Equal(t, "Ada", notifier.sent[0].Name)
}

func TestAdminUpdateRequiresIsRead(t *testing.T) {
	router := newContactRouter(newFakeContactRepo(), nil)

	var buf bytes.Buffer
	buf.WriteString(`{}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/inquiries/some-id", &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "is_read")
}

func TestAdminUpdateMarksRead(t *testing.T) {
	repo := newFakeContactRepo()
	router := newContactRouter(repo, nil)

	rec := postJSON(t, router, "/api/contact", map[string]string{
		"name": "Ada", "email": "ada@example.com", "message": "hi",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Data Inquiry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	var buf bytes.Buffer
	buf.WriteString(`{"is_read": true}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/inquiries/"+created.Data.ID, &buf)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, repo.items[created.Data.ID].IsRead)
}

func TestAdminDeleteIsIdempotent(t *testing.T) {
	router := newContactRouter(newFakeContactRepo(), nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/inquiries/1aa24c50-98f9-4e9f-a7f1-cdd52eb6e9b1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
