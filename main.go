package main

import (
	"log"

	"github.com/dungle2901/loan-appraisal/client"
	"github.com/dungle2901/loan-appraisal/config"
	"github.com/dungle2901/loan-appraisal/handler"
	"github.com/dungle2901/loan-appraisal/repository"
	"github.com/dungle2901/loan-appraisal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.TesseractLanguage)
	defer tesseractClient.Close()

	pdfProcessor := service.NewPDFProcessor()
	calculator := service.NewFinancialCalculator(cfg.ReferenceMonthlyIncome, cfg.ReferenceMonthlyExpense)

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		log.Printf("Using redis cache at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
		log.Println("REDIS_ADDR not set, using in-memory cache")
	}

	appraisalService := service.NewAppraisalService(tesseractClient, pdfProcessor, calculator, cache, cfg.CacheTTL)
	idcardService := service.NewIDCardService(tesseractClient)

	appraisalHandler := handler.NewAppraisalHandler(appraisalService, cfg.MaxFileSize)
	idcardHandler := handler.NewIDCardHandler(idcardService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Loan Application Appraisal",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		appraisal := api.Group("/appraisal")
		{
			appraisal.POST("/analyze", appraisalHandler.Analyze)
			appraisal.POST("/schedule", appraisalHandler.Schedule)
			appraisal.POST("/metrics", appraisalHandler.Metrics)
			appraisal.POST("/records", appraisalHandler.Records)
		}

		idcard := api.Group("/idcard")
		{
			idcard.POST("/verify", idcardHandler.Verify)
		}
	}

	// Start server
	log.Printf("Starting Loan Application Appraisal Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
