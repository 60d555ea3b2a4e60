package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"construction_web/internal/api/handlers"
	"construction_web/internal/middleware"
	"construction_web/internal/service"
	"construction_web/pkg/config"
)

func SetupRoutes(r *gin.Engine, services *service.Services, cfg *config.Config) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.UserService, cfg.JWT)
	projectHandler := handlers.NewProjectHandler(services.ProjectService)
	workerHandler := handlers.NewWorkerHandler(services.WorkerService)
	expenseHandler := handlers.NewExpenseHandler(services.ExpenseService)
	fileHandler := handlers.NewFileHandler(services.FileService)
	messageHandler := handlers.NewMessageHandler(services.HistoryService)
	wsHandler := handlers.NewWebSocketHandler(services.ChatService)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 使用者認證相關
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		// 建案相關
		projects := authorized.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)

			// 建案底下的子資源
			projects.GET("/:id/workers", workerHandler.ListWorkers)
			projects.GET("/:id/checklist", projectHandler.ListChecklist)
			projects.GET("/:id/expenses", expenseHandler.ListExpenses)
			projects.GET("/:id/files", fileHandler.ListFiles)

			// 聊天歷史讀取端點（頁面載入與重連補發）
			projects.GET("/:id/messages", messageHandler.History)
		}

		authorized.POST("/workers", workerHandler.CreateWorker)
		authorized.PUT("/checklist/:id", projectHandler.UpdateChecklistItem)
		authorized.POST("/expenses", expenseHandler.CreateExpense)
		authorized.POST("/files", fileHandler.CreateFile)

		// WebSocket 連接點，訂閱建案在連線內以 subscribe 訊息框完成
		authorized.GET("/ws", wsHandler.HandleWebSocket)
	}
}
