package main

import (
	"context"
	"log"

	"mizan-backend/config"
	"mizan-backend/handlers"
	"mizan-backend/legaldb"
	"mizan-backend/repository"
	"mizan-backend/service"
	"mizan-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := initPostgres(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize Postgres", zap.Error(err))
	}
	defer db.Close()
	logger.Info("postgres connection established")

	fileStorage, err := storage.New(cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}
	logger.Info("storage initialized", zap.String("type", cfg.StorageType))

	analysisRepo := repository.NewAnalysisRepository(db)
	fileRepo := repository.NewFileRepository(db)

	matchMode := legaldb.MatchKeywordsOrText
	if cfg.LawMatchMode == "keywords-only" {
		matchMode = legaldb.MatchKeywordsOnly
	}

	narrative, err := initNarrative(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize narrative generator", zap.Error(err))
	}

	analysisService := service.NewAnalysisService(
		service.AnalysisWithRepository(analysisRepo),
		service.AnalysisWithNarrativeGenerator(narrative),
		service.AnalysisWithMatchMode(matchMode),
		service.AnalysisWithLogger(logger),
	)

	analysisHandler := handlers.NewAnalysisHandler(analysisService, analysisRepo, fileRepo, fileStorage, cfg.MaxFileSize, logger)
	fileHandler := handlers.NewFileHandler(fileRepo, analysisRepo, fileStorage, cfg.MaxFileSize)
	referenceHandler := handlers.NewReferenceHandler(matchMode)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		// Analysis endpoints
		api.POST("/analyses", analysisHandler.CreateAnalysis)
		api.GET("/analyses", analysisHandler.ListAnalyses)
		api.GET("/analyses/:id", analysisHandler.GetAnalysis)
		api.GET("/analyses/:id/export", analysisHandler.ExportAnalysis)
		api.DELETE("/analyses/:id", analysisHandler.DeleteAnalysis)

		// File endpoints
		api.POST("/files/upload", fileHandler.UploadFile)
		api.GET("/files", fileHandler.ListFiles)
		api.GET("/files/:id", fileHandler.GetFile)
		api.DELETE("/files/:id", fileHandler.DeleteFile)

		// Legal reference endpoints
		api.GET("/references/constitution", referenceHandler.SearchConstitution)
		api.GET("/references/laws", referenceHandler.SearchLaws)
		api.GET("/references/precedents", referenceHandler.SearchPrecedents)
		api.GET("/references/case-types/:type/articles", referenceHandler.CaseTypeArticles)
		api.GET("/references/case-type", referenceHandler.SuggestCaseType)
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if err := zapCfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return zapCfg.Build()
}

func initPostgres(connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return pool, nil
}

// initNarrative returns the Gemini-backed generator when an API key is
// configured, otherwise the deterministic template generator.
func initNarrative(cfg *config.Config, logger *zap.Logger) (service.NarrativeGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Info("GEMINI_API_KEY not set, using template narrative")
		return service.NewTemplateNarrative(), nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, err
	}

	logger.Info("gemini narrative initialized", zap.String("model", cfg.GeminiModel))
	return service.NewGeminiNarrative(client, cfg.GeminiModel, logger), nil
}
