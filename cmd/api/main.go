package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/config"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/database"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/http/handlers"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/http/middleware"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/integration/analytics"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/jobstore"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/mail"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/memory"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/queue"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/worker"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/logger"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env não encontrado, usando variáveis do ambiente")
	}

	cfg := config.Load()

	zapLogger, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("erro ao iniciar logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startedAt := time.Now()

	// 1. Backend de analytics
	client := analytics.NewClient(cfg.AnalyticsBaseURL, zapLogger,
		analytics.WithHTTPClient(&http.Client{Timeout: cfg.AnalyticsTimeout}),
		analytics.WithErrorHook(middleware.RecordAnalyticsError),
	)

	// 2. Preferências por sessão
	var (
		db       *sql.DB
		settings entity.SettingsRepositoryInterface
	)
	if cfg.DatabaseURL != "" {
		db, err = database.NewDBConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			zapLogger.Fatal("❌ Erro ao conectar no Postgres", zap.Error(err))
		}
		defer db.Close()

		repo := database.NewSettingsRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			zapLogger.Fatal("❌ Erro ao migrar session_settings", zap.Error(err))
		}
		settings = repo
		zapLogger.Info("🐘 Preferências no Postgres")
	} else {
		settings = memory.NewSettingsStore()
		zapLogger.Warn("⚠️ DATABASE_URL vazio, preferências em memória")
	}

	// 3. Estado dos jobs de envio em massa
	var (
		rdb  *redis.Client
		jobs usecase.JobStoreInterface
	)
	if cfg.RedisAddr != "" {
		rdb, err = jobstore.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass)
		if err != nil {
			zapLogger.Fatal("❌ Erro ao conectar no Redis", zap.Error(err))
		}
		defer rdb.Close()
		jobs = jobstore.NewRedisJobStore(rdb, jobstore.DefaultTTL)
		zapLogger.Info("🧠 Jobs no Redis", zap.String("addr", cfg.RedisAddr))
	} else {
		jobs = jobstore.NewMemoryJobStore(jobstore.DefaultTTL)
		zapLogger.Warn("⚠️ REDIS_ADDR vazio, jobs em memória")
	}

	// 4. Relatório por email
	var reports usecase.ReportSender
	if cfg.MailHost != "" {
		reports = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	}

	processor := usecase.NewMassFollowupProcessor(client, jobs, reports, zapLogger)
	processor.OnFinished = func(state entity.JobState) {
		middleware.RecordMassFollowupJob(string(state))
	}

	// 5. Fila (RabbitMQ ou execução local)
	var (
		amqpConn *amqp.Connection
		jobQueue usecase.JobQueueInterface
		inline   *queue.InlineQueue
	)
	if cfg.AMQPURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			zapLogger.Fatal("❌ Erro ao conectar no RabbitMQ", zap.Error(err))
		}
		defer rabbitMQ.Close()
		amqpConn = rabbitMQ.Conn

		jobQueue = queue.NewProducer(rabbitMQ.Ch)

		w := queue.NewWorker(rabbitMQ.Ch, processor, zapLogger)
		go func() {
			if err := w.Start(ctx, queue.QueueName); err != nil {
				zapLogger.Error("❌ Worker parou", zap.Error(err))
			}
		}()
	} else {
		inline = queue.NewInlineQueue(processor, zapLogger)
		jobQueue = inline
		zapLogger.Warn("⚠️ AMQP_URL vazio, envios em massa rodam no próprio processo")
	}

	// 6. Workers de apoio
	monitor := worker.NewHealthMonitor(client, middleware.SetBackendUp, cfg.HealthInterval, zapLogger)
	go monitor.Start(ctx)

	authLimiter := handlers.NewRateLimiter(10, time.Minute)
	go authLimiter.Cleanup(ctx, 5*time.Minute)

	// 7. UseCases
	followupsUC := usecase.NewFollowupsUseCase(client)
	sessionSvc := usecase.NewSessionService(settings)
	massUC := usecase.NewMassFollowupUseCase(client, jobQueue, jobs, settings, followupsUC, cfg.FollowupDelaySeconds, zapLogger)
	go massUC.Cleanup(ctx, 10*time.Minute)

	// 8. Handlers e router
	router := newRouter(routes{
		pages: handlers.NewPagesHandler(
			usecase.NewDashboardUseCase(client),
			usecase.NewLeadsUseCase(client),
			followupsUC,
			usecase.NewAdvogadosUseCase(client),
		),
		health:      handlers.NewHealthHandler(usecase.NewHealthUseCase(client, startedAt), db, amqpConn, rdb),
		outreach:    handlers.NewOutreachHandler(),
		auth:        handlers.NewAuthHandler(sessionSvc),
		mass:        handlers.NewMassFollowupHandler(massUC),
		authLimiter: authLimiter,
		settings:    sessionSvc,
		corsOrigins: cfg.CORSOrigins,
		logger:      zapLogger,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("🔥 Dashboard rodando",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("analytics", cfg.AnalyticsBaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("❌ Erro no servidor HTTP", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("🛑 Encerrando...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("❌ Erro no shutdown", zap.Error(err))
	}
	if inline != nil {
		inline.Wait()
	}
}
