package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	auth2 "gitlab.com/codearena.net/internal/core/services/auth"
	"gitlab.com/codearena.net/internal/core/services/bookmark"
	"gitlab.com/codearena.net/internal/core/services/leaderboard"
	"gitlab.com/codearena.net/internal/core/services/problem"
	"gitlab.com/codearena.net/internal/core/services/stats"
	"gitlab.com/codearena.net/internal/core/services/submission"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/admin"
	"gitlab.com/codearena.net/internal/handlers/auth"
	"gitlab.com/codearena.net/internal/handlers/bookmarks"
	"gitlab.com/codearena.net/internal/handlers/dashboard"
	"gitlab.com/codearena.net/internal/handlers/problems"
	"gitlab.com/codearena.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	problemService     problem.IProblemService
	problemAdmin       problem.IProblemAdminService
	submissionService  submission.ISubmissionService
	statsService       stats.IStatsService
	leaderboardService leaderboard.ILeaderboardService
	bookmarkService    bookmark.IBookmarkService

	ggAuth     auth2.IAuthService
	localAuth  auth2.IAuthService
	jwtService primary.JWTService
}

func NewServiceProvider(
	problemService problem.IProblemService,
	problemAdmin problem.IProblemAdminService,
	submissionService submission.ISubmissionService,
	statsService stats.IStatsService,
	leaderboardService leaderboard.ILeaderboardService,
	bookmarkService bookmark.IBookmarkService,
	ggAuth auth2.IAuthService,
	localAuth auth2.IAuthService,
	jwtService primary.JWTService,
) *ServiceProvider {
	return &ServiceProvider{
		problemService:     problemService,
		problemAdmin:       problemAdmin,
		submissionService:  submissionService,
		statsService:       statsService,
		leaderboardService: leaderboardService,
		bookmarkService:    bookmarkService,
		ggAuth:             ggAuth,
		localAuth:          localAuth,
		jwtService:         jwtService,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	oauthConfig     *config.GGAuthConfig
	logger          primary.Logger
}

func NewServer(cfg *config.HTTPConfig, oauthConfig *config.GGAuthConfig, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            cfg.Port,
		ServiceName:     cfg.ServiceName,
		ServiceProvider: serviceProvider,
		oauthConfig:     oauthConfig,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	handlers.RegisterHealth(r, s.ServiceName)

	mw := handlers.New(s.ServiceProvider.jwtService, s.logger)
	protected := r.NewRoute().Subrouter()
	protected.Use(mw.JWTMiddleware)
	adminRouter := protected.NewRoute().Subrouter()
	adminRouter.Use(mw.RequirePermission(auth2.PermissionManageProblems))

	problems.
		NewProblemHandler(s.ServiceProvider.problemService, s.ServiceProvider.submissionService, s.logger).
		RegisterRoutes(r, protected)
	submissions.NewHandler(s.ServiceProvider.submissionService, s.logger).Register(protected)
	dashboard.NewHandler(s.ServiceProvider.statsService, s.ServiceProvider.leaderboardService).Register(protected)
	bookmarks.NewHandler(s.ServiceProvider.bookmarkService, s.logger).Register(protected)
	admin.NewHandler(s.ServiceProvider.problemAdmin, s.logger).Register(adminRouter)
	auth.NewHandler(s.oauthConfig, s.logger).RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
	})
	s.router = r
	return nil
}

// Handler returns the routed handler, Init must have been called
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves in the background. A listener failure is sent on the
// returned channel. In-flight requests keep their own contexts so that Stop
// can drain them.
func (s *Server) Start() <-chan error {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // lifted by the submit handler
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
