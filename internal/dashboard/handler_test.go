package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thecanopi/The-Canopi-Website/internal/contact"
	"github.com/thecanopi/The-Canopi-Website/internal/meetings"
)

type fakeDashboardRepo struct {
	stats       Stats
	inquiries   []contact.Inquiry
	upcoming    []meetings.MeetingRequest
	countErr    error
	inquiryErr  error
	upcomingErr error
}

func (f *fakeDashboardRepo) PublishedCaseStudies(_ context.Context) (int, error) {
	return f.stats.CaseStudies, f.countErr
}

func (f *fakeDashboardRepo) PublishedTestimonials(_ context.Context) (int, error) {
	return f.stats.Testimonials, f.countErr
}

func (f *fakeDashboardRepo) PublishedTeamMembers(_ context.Context) (int, error) {
	return f.stats.TeamMembers, f.countErr
}

func (f *fakeDashboardRepo) PendingMeetings(_ context.Context) (int, error) {
	return f.stats.PendingMeetings, f.countErr
}

func (f *fakeDashboardRepo) UnreadInquiries(_ context.Context) (int, error) {
	return f.stats.UnreadInquiries, f.countErr
}

func (f *fakeDashboardRepo) RecentInquiries(_ context.Context, _ int) ([]contact.Inquiry, error) {
	return f.inquiries, f.inquiryErr
}

func (f *fakeDashboardRepo) UpcomingMeetings(_ context.Context, _ int) ([]meetings.MeetingRequest, error) {
	return f.upcoming, f.upcomingErr
}

func overview(repo Repository) *httptest.ResponseRecorder {
	h := NewHandler(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	h.Overview(rec, req)
	return rec
}

func TestOverviewShape(t *testing.T) {
	slotID := "slot-1"
	repo := &fakeDashboardRepo{
		stats: Stats{CaseStudies: 3, Testimonials: 5, TeamMembers: 4, PendingMeetings: 2, UnreadInquiries: 7},
		inquiries: []contact.Inquiry{
			{ID: "i1", Name: "Ada", Email: "ada@example.com", Message: "hi", CreatedAt: time.Now()},
		},
		upcoming: []meetings.MeetingRequest{
			{
				ID:     "m1",
				Name:   "Bob",
				Email:  "bob@example.com",
				Status: meetings.StatusPending,
				SlotID: &slotID,
				Slot:   &meetings.MeetingSlot{ID: slotID, Date: "2026-09-01", StartTime: "10:00", EndTime: "10:30", IsBooked: true},
			},
		},
	}

	rec := overview(repo)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		OK               bool                      `json:"ok"`
		Stats            Stats                     `json:"stats"`
		RecentInquiries  []contact.Inquiry         `json:"recentInquiries"`
		UpcomingMeetings []meetings.MeetingRequest `json:"upcomingMeetings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.OK)
	require.Equal(t, repo.stats, body.Stats)
	require.Len(t, body.RecentInquiries, 1)
	require.Len(t, body.UpcomingMeetings, 1)
	require.NotNil(t, body.UpcomingMeetings[0].Slot)
	require.Equal(t, "2026-09-01", body.UpcomingMeetings[0].Slot.Date)
}

func TestOverviewStatKeys(t *testing.T) {
	rec := overview(&fakeDashboardRepo{})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	var stats map[string]int
	require.NoError(t, json.Unmarshal(body["stats"], &stats))
	for _, key := range []string{"caseStudies", "testimonials", "teamMembers", "pendingMeetings", "unreadInquiries"} {
		require.Contains(t, stats, key)
	}
}

func TestOverviewFailsWhenAnyQueryFails(t *testing.T) {
	repo := &fakeDashboardRepo{upcomingErr: errors.New("connection reset")}
	rec := overview(repo)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"database error"}`, rec.Body.String())
}
