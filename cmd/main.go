package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"gitlab.com/codearena.net/internal/adapter/crypto"
	"gitlab.com/codearena.net/internal/adapter/nats/submissionevents"
	"gitlab.com/codearena.net/internal/adapter/piston"
	"gitlab.com/codearena.net/internal/adapter/postgres"
	"gitlab.com/codearena.net/internal/adapter/postgres/bookmarkrepository"
	"gitlab.com/codearena.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/codearena.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/codearena.net/internal/adapter/postgres/userrepository"
	"gitlab.com/codearena.net/internal/adapter/redis/leaderboardcache"
	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	auth2 "gitlab.com/codearena.net/internal/core/services/auth"
	"gitlab.com/codearena.net/internal/core/services/bookmark"
	"gitlab.com/codearena.net/internal/core/services/judge"
	"gitlab.com/codearena.net/internal/core/services/leaderboard"
	"gitlab.com/codearena.net/internal/core/services/problem"
	"gitlab.com/codearena.net/internal/core/services/stats"
	"gitlab.com/codearena.net/internal/core/services/submission"
	logger2 "gitlab.com/codearena.net/internal/global/logger"
	http2 "gitlab.com/codearena.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	ctxBg, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	logger2.Info("Starting judge service")

	logger := logger2.Logger
	defer logger.Sync()

	sysCfg := config.NewSystemConfig()

	db, err := postgres.Connect(ctxBg, sysCfg.PostgresConfig.Url)
	if err != nil {
		panic(err)
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctxBg, db); err != nil {
		panic(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	var publisher secondary.SubmissionEventPublisher = submissionevents.NoopPublisher{}
	if sysCfg.NatsConfig.Url != "" {
		nc, err := submissionevents.Connect(sysCfg.NatsConfig, sysCfg.HTTPConfig.ServiceName)
		if err != nil {
			panic(err)
		}
		defer nc.Drain()
		publisher = submissionevents.New(nc, sysCfg.NatsConfig.Subject, logger)
	} else {
		logger.Warn("NATS_URL not set, submission events are dropped")
	}

	// SECONDARY PORTS
	userPort := userrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	problemRepo := problemrepository.NewProblemRepository(db, logger, sysCfg.PostgresConfig.Schema)
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger)
	bookmarkRepo := bookmarkrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	boardCache := leaderboardcache.NewLeaderboardCache(redisClient, logger, sysCfg.RedisConfig.LeaderboardTTL)
	executor := piston.NewClient(sysCfg.SandboxConfig, logger)

	//primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	//services
	judgeSvc := judge.NewJudgeService(executor, sysCfg.JudgeConfig, logger)
	statsSvc := stats.NewStatsService(userPort, logger)
	leaderboardSvc := leaderboard.NewLeaderboardService(userPort, boardCache, logger)
	problemSvc := problem.NewProblemService(problemRepo, logger)
	bookmarkSvc := bookmark.NewBookmarkService(bookmarkRepo, problemRepo, logger)
	submissionSvc := submission.NewSubmissionService(submission.Dependencies{
		ProblemRepo:    problemRepo,
		SubmissionRepo: submissionRepo,
		UserPort:       userPort,
		Judge:          judgeSvc,
		Stats:          statsSvc,
		Leaderboard:    leaderboardSvc,
		Publisher:      publisher,
		Logger:         logger,
		RecentLimit:    sysCfg.JudgeConfig.RecentSubmissions,
	})
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider, auth2.WithAdmins(sysCfg.AdminConfig))
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider, auth2.WithAdmins(sysCfg.AdminConfig))
	serviceProvider := http2.NewServiceProvider(
		problemSvc, problemSvc, submissionSvc, statsSvc, leaderboardSvc, bookmarkSvc,
		ggAuth, localAuth, jwtProvider,
	)

	//server
	httServer := http2.NewServer(sysCfg.HTTPConfig, sysCfg.GGAuthConfig, *serviceProvider, logger)
	err = httServer.Init()
	if err != nil {
		panic(err)
	}
	serverErr := httServer.Start()

	select {
	case <-ctxBg.Done():
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server stopped unexpectedly", "error", err)
		}
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httServer.Stop(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("successfully shutdown server")
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
