package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"pharmacy-assistant/internal/config"
	httpctl "pharmacy-assistant/internal/controllers/http"
	"pharmacy-assistant/internal/infra/db"
	"pharmacy-assistant/internal/infra/pdf"
	"pharmacy-assistant/internal/infra/rabbitmq"
	"pharmacy-assistant/internal/infra/vision"
	sqliterepo "pharmacy-assistant/internal/repository/sqlite"
	"pharmacy-assistant/internal/services"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	cfg := config.Load()
	ctx := context.Background()

	open := storeOpener(cfg)
	if err := db.Init(open); err != nil {
		logger.Fatal().Err(err).Msg("store init failed")
	}

	medicineRepo := sqliterepo.NewMedicineRepository(open)
	orderRepo := sqliterepo.NewOrderRepository(open)

	producer, generator := buildProducers(ctx, cfg)

	var publisher rabbitmq.PublisherInterface
	if cfg.AMQPURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.AMQPURL, "pharmacy.exchange")
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init publisher")
		}
		defer pub.Close()
		publisher = pub
	}

	inventory := services.NewInventoryService(medicineRepo)
	orders := services.NewOrderService(orderRepo, publisher)
	prescriptions := services.NewPrescriptionService(producer, inventory)
	recommendations := services.NewRecommendationService(generator, medicineRepo)
	reports := services.NewReportService(cfg.ReportsDir, pdf.TextExtractor{})
	forms := pdf.NewFormRenderer(cfg.FormsDir)

	if cfg.RedisAddr != "" {
		recommendations.SetRedisClient(redis.NewClient(&redis.Options{
			Addr:        cfg.RedisAddr,
			DialTimeout: 2 * time.Second,
		}))
	}

	handler := httpctl.NewHandler(prescriptions, inventory, orders, recommendations, reports, forms)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	logger.Info().Str("port", cfg.Port).Msg("starting pharmacy assistant")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server run failed")
	}
}

func storeOpener(cfg config.Config) db.Opener {
	if cfg.DBDriver == "mysql" {
		return db.MySQLOpenerFromEnv()
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal().Err(err).Str("dir", dir).Msg("cannot create store directory")
		}
	}
	return db.SQLiteOpener(cfg.DBPath)
}

// buildProducers wires the two-stage extraction pipeline: Gemini vision
// first, Tesseract OCR as fallback. Without an API key the service still
// works on OCR alone, and recommendations degrade to a message.
func buildProducers(ctx context.Context, cfg config.Config) (vision.TextProducer, vision.TextGenerator) {
	ocr := vision.NewTesseractProducer(cfg.TesseractLang)

	gemini, err := vision.NewGeminiProducer(ctx, cfg.GeminiAPIKey, cfg.VisionModel, cfg.TextModel)
	if err != nil {
		logger.Warn().Err(err).Msg("gemini unavailable, using OCR only")
		return ocr, nil
	}
	return vision.NewFallbackProducer(gemini, ocr), gemini
}
