package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"sustaining-audit-app/internal/config"
	"sustaining-audit-app/internal/database"
	"sustaining-audit-app/internal/handler"
	"sustaining-audit-app/internal/middleware"
	"sustaining-audit-app/internal/repository"
	"sustaining-audit-app/internal/service"
	"sustaining-audit-app/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize database connection
	db := database.Connect(cfg)

	// 3. Initialize photo blob store
	photos, err := storage.NewPhotoStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize photo store: %v", err)
	}

	// 4. Initialize repositories
	checklistRepo := repository.NewChecklistRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	checklistService := service.NewChecklistService(checklistRepo)
	auditService := service.NewAuditService(auditRepo, checklistRepo, photos)
	exportService, err := service.NewExportService(auditRepo, cfg.Storage.ExportDir)
	if err != nil {
		log.Fatalf("Failed to initialize export service: %v", err)
	}

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg))

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	r.Use(sessions.Sessions("sustaining_audit", store))

	// Templates and static assets
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	// 8. Register handlers
	homeHandler := handler.NewHomeHandler()
	checklistHandler := handler.NewChecklistHandler(checklistService)
	auditHandler := handler.NewAuditHandler(auditService, checklistService)
	exportHandler := handler.NewExportHandler(exportService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "sustaining-audit-app",
		})
	})

	r.GET("/", homeHandler.Index)

	checklist := r.Group("/checklist")
	{
		checklist.GET("", checklistHandler.Show)
		checklist.POST("/categories", checklistHandler.AddCategory)
		checklist.POST("/items", checklistHandler.AddItem)
		checklist.POST("/items/:id", checklistHandler.UpdateItem)
	}

	audits := r.Group("/audits")
	{
		audits.GET("", auditHandler.List)
		audits.GET("/new", auditHandler.NewForm)
		audits.POST("/new", auditHandler.Create)
		audits.GET("/delete/:id", auditHandler.ConfirmDelete)
		audits.POST("/delete/:id", auditHandler.Delete)
		audits.GET("/export/:id", exportHandler.ExportAudit)
	}

	r.GET("/export_mil", exportHandler.ExportMIL)

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
