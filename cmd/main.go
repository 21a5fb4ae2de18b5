package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/adpulse/backend/internal/advertising"
	"github.com/adpulse/backend/internal/delivery"
	"github.com/adpulse/backend/internal/infra"
	"github.com/adpulse/backend/internal/notify"
	"github.com/adpulse/backend/internal/pipeline"
	"github.com/adpulse/backend/internal/rules"
	"github.com/adpulse/backend/internal/script"
	"github.com/adpulse/backend/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / DB INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	audioDir := os.Getenv("AUDIO_DIR")
	if audioDir == "" {
		audioDir = "./public/audio"
	}

	delaySeconds, _ := strconv.Atoi(os.Getenv("PIPELINE_DELAY_SECONDS"))
	if delaySeconds <= 0 {
		delaySeconds = 5
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}
	defer db.Close()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	s3Client, err := infra.NewS3Client()
	if err != nil {
		log.Fatalf("failed to init s3: %v", err)
	}

	// =========================================================================
	// REPOSITORIES
	// =========================================================================

	advertisingRepo := infra.NewAdvertisingRepo(db)
	advertiserRepo := infra.NewAdvertiserRepo(db)
	ruleRepo := infra.NewRuleRepo(db)
	audioRepo := infra.NewAudioRepo(db)

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	notifyInfra := notify.NewInfra()
	notifyService := notify.NewService(notifyInfra)

	// =========================================================================
	// CLIENTS (LLM / TTS)
	// =========================================================================

	scriptWriter := script.NewOpenAIWriter()
	ttsClient := speech.NewElevenLabsClient()

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	engine := rules.NewEngine(ruleRepo, advertiserRepo)
	matcher := rules.NewMatcher(engine, advertisingRepo)
	lifecycle := advertising.NewLifecycle(advertisingRepo)
	synthesizer := speech.NewSynthesizer(ttsClient, audioDir, s3Client)

	pipelineService := pipeline.NewService(
		matcher,
		lifecycle,
		advertisingRepo,
		advertiserRepo,
		ruleRepo,
		audioRepo,
		scriptWriter,
		synthesizer,
		notifyService,
		time.Duration(delaySeconds)*time.Second,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// HANDLERS
	pipelineHandler := delivery.NewPipelineHandler(pipelineService, zl)
	advertiserHandler := delivery.NewAdvertiserHandler(advertiserRepo)
	ruleHandler := delivery.NewRuleHandler(ruleRepo)
	audioHandler := delivery.NewAudioHandler(audioRepo)

	// ROUTES
	delivery.RegisterRoutes(
		r,
		pipelineHandler,
		advertiserHandler,
		ruleHandler,
		audioHandler,
		audioDir,
	)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	// re-drain on a timer so records stranded by a crash get picked up
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			res := pipelineService.DrainPending(context.Background())
			if res.ProcessedRecords > 0 || len(res.Errors) > 0 {
				log.Printf("[drain-pending] processed=%d ok=%d failed=%d errors=%d",
					res.ProcessedRecords, res.SuccessfulGenerations, res.FailedGenerations, len(res.Errors))
			}
		}
	}()

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "adpulse",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
