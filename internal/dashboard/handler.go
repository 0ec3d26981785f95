package dashboard

import (
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/thecanopi/The-Canopi-Website/internal/contact"
	"github.com/thecanopi/The-Canopi-Website/internal/meetings"
	"github.com/thecanopi/The-Canopi-Website/internal/middleware"
	"github.com/thecanopi/The-Canopi-Website/internal/transport"
)

const listLimit = 5

type Stats struct {
	CaseStudies     int `json:"caseStudies"`
	Testimonials    int `json:"testimonials"`
	TeamMembers     int `json:"teamMembers"`
	PendingMeetings int `json:"pendingMeetings"`
	UnreadInquiries int `json:"unreadInquiries"`
}

type Handler struct {
	repo Repository
	log  *slog.Logger
}

func NewHandler(repo Repository, log *slog.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Overview fans the dashboard queries out in parallel and fails the whole
// response if any of them errors.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	g, ctx := errgroup.WithContext(r.Context())

	var (
		stats     Stats
		inquiries []contact.Inquiry
		upcoming  []meetings.MeetingRequest
	)

	g.Go(func() (err error) {
		stats.CaseStudies, err = h.repo.PublishedCaseStudies(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Testimonials, err = h.repo.PublishedTestimonials(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TeamMembers, err = h.repo.PublishedTeamMembers(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.PendingMeetings, err = h.repo.PendingMeetings(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.UnreadInquiries, err = h.repo.UnreadInquiries(ctx)
		return err
	})
	g.Go(func() (err error) {
		inquiries, err = h.repo.RecentInquiries(ctx, listLimit)
		return err
	})
	g.Go(func() (err error) {
		upcoming, err = h.repo.UpcomingMeetings(ctx, listLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		log := h.log
		if id := middleware.RequestIDFromContext(r.Context()); id != "" {
			log = log.With(slog.String("request_id", id))
		}
		log.Error("dashboard query failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, transport.Envelope{
		"ok":               true,
		"stats":            stats,
		"recentInquiries":  inquiries,
		"upcomingMeetings": upcoming,
	})
}
