package routes

import (
	"salomao_ai/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChat    = "/chat"
	PathReports = "/reports"
)

func addChatRoutes(rg *gin.RouterGroup, chatHandler *handlers.ChatHandler, reportHandler *handlers.ReportHandler) {
	chat := rg.Group(PathChat)
	{
		chat.POST("", chatHandler.Chat)
		chat.GET("/questions", chatHandler.Questions)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/:id", reportHandler.GetReport)
	}
}
