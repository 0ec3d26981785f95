package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/thecanopi/The-Canopi-Website/internal/blog"
	"github.com/thecanopi/The-Canopi-Website/internal/cache"
	"github.com/thecanopi/The-Canopi-Website/internal/casestudies"
	"github.com/thecanopi/The-Canopi-Website/internal/config"
	"github.com/thecanopi/The-Canopi-Website/internal/contact"
	"github.com/thecanopi/The-Canopi-Website/internal/dashboard"
	"github.com/thecanopi/The-Canopi-Website/internal/db"
	"github.com/thecanopi/The-Canopi-Website/internal/identity"
	"github.com/thecanopi/The-Canopi-Website/internal/meetings"
	"github.com/thecanopi/The-Canopi-Website/internal/middleware"
	"github.com/thecanopi/The-Canopi-Website/internal/notifications"
	"github.com/thecanopi/The-Canopi-Website/internal/sitecontent"
	"github.com/thecanopi/The-Canopi-Website/internal/team"
	"github.com/thecanopi/The-Canopi-Website/internal/testimonials"
	"github.com/thecanopi/The-Canopi-Website/internal/transport"
	"github.com/thecanopi/The-Canopi-Website/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("postgres connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("postgres connected")
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(pool); err != nil {
			logger.Error("migrations failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	// Local verification needs the project's JWT secret; without it every
	// admin request is checked against the hosted auth API instead.
	var verifier identity.Verifier
	if cfg.SupabaseJWTSecret != "" {
		verifier = &identity.JWTVerifier{Secret: []byte(cfg.SupabaseJWTSecret)}
		logger.Info("admin auth: local token verification")
	} else {
		verifier = identity.NewAuthAPIVerifier(cfg.SupabaseURL, cfg.SupabaseServiceKey)
		logger.Info("admin auth: auth API verification")
	}
	roles := identity.NewRoleStore(pool)

	mailer := notifications.NewResendClient(cfg.ResendAPIKey, cfg.NotifyEmailFrom, cfg.NotifyEmailTo)
	var inquiryNotifier contact.Notifier
	var meetingNotifier meetings.Notifier
	if mailer == nil {
		logger.Info("resend mailer disabled")
	} else {
		inquiryNotifier = mailer
		meetingNotifier = mailer
		logger.Info("resend mailer enabled", slog.String("to", cfg.NotifyEmailTo))
	}

	val := validation.New()

	caseStudiesHandler := casestudies.NewHandler(casestudies.NewService(casestudies.NewRepository(pool)), val, logger, cacheStore, cacheTTL)
	testimonialsHandler := testimonials.NewHandler(testimonials.NewService(testimonials.NewRepository(pool)), val, logger, cacheStore, cacheTTL)
	blogHandler := blog.NewHandler(blog.NewService(blog.NewRepository(pool)), val, logger)
	meetingsHandler := meetings.NewHandler(meetings.NewService(meetings.NewRepository(pool)), val, logger, meetingNotifier)
	contactHandler := contact.NewHandler(contact.NewService(contact.NewRepository(pool)), val, logger, inquiryNotifier)
	teamHandler := team.NewHandler(team.NewService(team.NewRepository(pool)), val, logger)
	siteContentHandler := sitecontent.NewHandler(sitecontent.NewStore(pool), logger)
	dashboardHandler := dashboard.NewHandler(dashboard.NewRepository(pool), logger)

	adminAuth := middleware.AdminAuth(verifier, roles, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	bookingLimiter := middleware.NewRateLimiter(cfg.RateLimitBooking, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Get("/health", health)
	r.Get("/ping", ping)

	r.Route("/api", func(api chi.Router) {
		api.Get("/ping", ping)

		api.Get("/case-studies", caseStudiesHandler.PublicList)
		api.Get("/testimonials", testimonialsHandler.PublicList)
		api.Get("/meeting-slots", meetingsHandler.PublicListSlots)
		api.Get("/blog-posts", blogHandler.PublicList)
		api.Get("/blog-posts/{slug}", blogHandler.PublicGetBySlug)
		api.Get("/team", teamHandler.PublicList)
		api.Get("/site-content/{key}", siteContentHandler.PublicGet)

		api.With(contactLimiter.Middleware).Post("/contact", contactHandler.PublicCreate)
		api.With(bookingLimiter.Middleware).Post("/meeting-request", meetingsHandler.PublicBook)

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(adminAuth)

			admin.Get("/me", me)
			admin.Get("/dashboard", dashboardHandler.Overview)

			admin.Get("/case-studies", caseStudiesHandler.AdminList)
			admin.Post("/case-studies", caseStudiesHandler.AdminCreate)
			admin.Patch("/case-studies/{id}", caseStudiesHandler.AdminUpdate)
			admin.Delete("/case-studies/{id}", caseStudiesHandler.AdminDelete)

			admin.Get("/testimonials", testimonialsHandler.AdminList)
			admin.Post("/testimonials", testimonialsHandler.AdminCreate)
			admin.Patch("/testimonials/{id}", testimonialsHandler.AdminUpdate)
			admin.Delete("/testimonials/{id}", testimonialsHandler.AdminDelete)

			admin.Get("/blog-posts", blogHandler.AdminList)
			admin.Post("/blog-posts", blogHandler.AdminCreate)
			admin.Patch("/blog-posts/{id}", blogHandler.AdminUpdate)
			admin.Delete("/blog-posts/{id}", blogHandler.AdminDelete)

			admin.Get("/meeting-slots", meetingsHandler.AdminListSlots)
			admin.Post("/meeting-slots", meetingsHandler.AdminCreateSlot)
			admin.Delete("/meeting-slots/{id}", meetingsHandler.AdminDeleteSlot)

			admin.Get("/meeting-requests", meetingsHandler.AdminListRequests)
			admin.Patch("/meeting-requests/{id}", meetingsHandler.AdminUpdateRequest)
			admin.Delete("/meeting-requests/{id}", meetingsHandler.AdminDeleteRequest)

			admin.Get("/inquiries", contactHandler.AdminList)
			admin.Patch("/inquiries/{id}", contactHandler.AdminUpdate)
			admin.Delete("/inquiries/{id}", contactHandler.AdminDelete)

			admin.Get("/team", teamHandler.AdminList)
			admin.Post("/team", teamHandler.AdminCreate)
			admin.Patch("/team/{id}", teamHandler.AdminUpdate)
			admin.Delete("/team/{id}", teamHandler.AdminDelete)

			admin.Get("/site-content", siteContentHandler.AdminList)
			admin.Put("/site-content/{key}", siteContentHandler.AdminUpsert)
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

func health(w http.ResponseWriter, _ *http.Request) {
	transport.WriteOK(w)
}

func ping(w http.ResponseWriter, _ *http.Request) {
	transport.WriteJSON(w, http.StatusOK, transport.Envelope{"ok": true, "message": "API working"})
}

// me echoes the identity resolved by the auth middleware so the admin UI can
// confirm a session without another store round trip.
func me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		transport.WriteError(w, http.StatusUnauthorized, "Invalid session", nil)
		return
	}
	transport.WriteData(w, http.StatusOK, user)
}
