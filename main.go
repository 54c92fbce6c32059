package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/footyhub/footyhub/audit"
	"github.com/footyhub/footyhub/authenticator"
	"github.com/footyhub/footyhub/clients"
	"github.com/footyhub/footyhub/config"
	"github.com/footyhub/footyhub/controllers"
	"github.com/footyhub/footyhub/database"
	appmiddleware "github.com/footyhub/footyhub/middleware"
	"github.com/footyhub/footyhub/repositories"
	"github.com/footyhub/footyhub/services"
	"github.com/footyhub/footyhub/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Initialize(ctx, cfg.Driver(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to initialize database")
	}
	defer db.Close()

	repos := repositories.NewRepositories(db)

	clock := clockwork.NewRealClock()

	recorder := audit.NewRecorder(repos.Audit, cfg.AuditQueueSize, clock)
	if err := recorder.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start audit recorder")
	}

	upstreams := services.Upstreams{
		Weather:  clients.NewWeatherClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey, cfg.UpstreamTimeout),
		TeamInfo: clients.NewTeamInfoClient(cfg.TeamInfoAPIURL, cfg.RapidAPIKey, cfg.UpstreamTimeout),
		News:     clients.NewNewsClient(cfg.NewsAPIURL, cfg.RapidAPIKey, cfg.UpstreamTimeout),
	}

	srvs := services.NewServices(repos, recorder, upstreams, services.Options{
		BcryptCost:  cfg.BcryptCost,
		MaxPageSize: cfg.MaxPageSize,
		Clock:       clock,
	})

	// Single sign-on is optional
	var provider authenticator.Provider
	if cfg.OIDCEnabled() {
		provider, err = authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.OIDCDomain,
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			CallbackURL:  cfg.OIDCCallbackURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize OpenID Connect provider")
		}
	}

	ctrl := controllers.NewControllers(srvs, provider)

	r, err := setupRouter(ctrl, srvs, recorder, routerOptions{
		SSOEnabled:    provider != nil,
		SecureCookies: cfg.UseHTTPS,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup router")
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("driver", cfg.DBDriver).
			Bool("sso", provider != nil).
			Msg("footyhub starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	// Flush queued audit entries after the last request has finished
	if err := recorder.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Int("pending", recorder.Pending()).Msg("audit recorder did not drain")
	}

	log.Info().Msg("footyhub shutdown complete")
}

// setupLogger configures the global zerolog logger
func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if strings.EqualFold(cfg.LogFormat, "console") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

type routerOptions struct {
	SSOEnabled    bool
	SecureCookies bool
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, srvs *services.Services, recorder services.AuditRecorder, opts routerOptions) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(appmiddleware.RequestID)
	r.Use(appmiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(appmiddleware.ResolveIdentity(srvs.Identity))

	r.NotFound(ctrl.Dashboard.NotFound)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(templates.Static()))))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "footyhub"}`)
	})

	// PUBLIC ROUTES
	r.Get("/", ctrl.Dashboard.Index)
	r.Get("/login", ctrl.Auth.LoginPage)
	r.Post("/login", ctrl.Auth.Login)
	r.Get("/signup", ctrl.Auth.SignupPage)
	r.Post("/signup", ctrl.Auth.Signup)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/list", ctrl.Team.List)

	// Single sign-on keeps its state parameter in a short-lived cookie session
	if opts.SSOEnabled {
		sessionHandler, err := session.Sessioner(session.Options{
			Provider:       "memory",
			ProviderConfig: "",
			CookieName:     "footyhub_sso",
			Secure:         opts.SecureCookies,
			Gclifetime:     600,
			Maxlifetime:    600,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize session: %w", err)
		}

		r.Group(func(r chi.Router) {
			r.Use(sessionHandler)
			r.Get("/login/sso", ctrl.Auth.SSOLogin)
			r.Get("/callback", ctrl.Auth.Callback)
		})
	}

	// AUTHENTICATED ROUTES
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireAuth)

		r.Get("/search", ctrl.Lookup.SearchPage)
		r.Post("/search", ctrl.Lookup.Search)
		r.Get("/team-info", ctrl.Lookup.TeamInfoPage)
		r.Post("/team-info", ctrl.Lookup.TeamInfo)
		r.Get("/football-news", ctrl.Lookup.FootballNews)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", ctrl.History.Index)
			r.Get("/{id}", ctrl.History.Show)
			r.Get("/{id}/delete", ctrl.History.Delete)
		})
	})

	// ADMIN ROUTES (mutations are audited, including denied attempts)
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.AuditMutations(recorder))
		r.Use(appmiddleware.RequireAdmin(http.HandlerFunc(ctrl.Dashboard.Forbidden)))

		// Team catalog
		r.Get("/add", ctrl.Team.AddPage)
		r.Post("/add", ctrl.Team.Add)
		r.Get("/edit/{id}", ctrl.Team.EditPage)
		r.Post("/edit/{id}", ctrl.Team.Edit)
		r.Post("/delete/{id}", ctrl.Team.Delete)

		// User administration
		r.Route("/admin", func(r chi.Router) {
			r.Get("/", ctrl.Admin.Index)
			r.Post("/addUser", ctrl.Admin.AddUser)
			r.Post("/updateUser", ctrl.Admin.UpdateUser)
			r.Get("/{user}", ctrl.Admin.ShowUser)
			r.Get("/{user}/delete", ctrl.Admin.Delete)
			r.Get("/{user}/makeAdmin", ctrl.Admin.MakeAdmin)
		})
	})

	return r, nil
}
