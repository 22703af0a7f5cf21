package routes

import (
	"context"
	"log"
	_ "salomao_ai/docs" // generated by swag init
	"salomao_ai/internal/adapter/http/handlers"
	"salomao_ai/internal/adapter/http/middleware"
	"salomao_ai/internal/adapter/persistence/repository"
	"salomao_ai/internal/config"
	"salomao_ai/internal/infrastructure/database"
	"salomao_ai/internal/usecase"
	"salomao_ai/internal/usecase/interfaces"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg *config.Config) {
	repo := newReportRepository(cfg)

	chatHandler := handlers.NewChatHandler(usecase.NewChatUseCase(repo))
	reportHandler := handlers.NewReportHandler(usecase.NewReportUseCase(repo))

	router := NewRouter(cfg, chatHandler, reportHandler)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires middlewares and every route on a fresh engine.
func NewRouter(cfg *config.Config, chatHandler *handlers.ChatHandler, reportHandler *handlers.ReportHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Unversioned path used by the browser chat client.
	router.POST(PathChat, chatHandler.Chat)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addChatRoutes(v1, chatHandler, reportHandler)
	return router
}

// newReportRepository returns nil when reports are not persisted.
func newReportRepository(cfg *config.Config) interfaces.IReportRepository {
	if !cfg.Reports.Persist {
		log.Printf("[config] report persistence disabled")
		return nil
	}

	ddb, err := database.NewDynamoDBClient(context.Background(), cfg.DynamoDB)
	if err != nil {
		log.Printf("[config] report persistence disabled: dynamodb client err=%v", err)
		return nil
	}
	log.Printf("[config] report persistence enabled table=%s region=%s", cfg.Reports.TableName, cfg.DynamoDB.Region)
	return repository.NewReportDynamoRepository(ddb, cfg.Reports.TableName)
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigin))
}
