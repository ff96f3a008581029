package routes

import (
	"github.com/Alienware2000/intentionality-sub000/internal/handlers"
	"github.com/Alienware2000/intentionality-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(r gin.IRouter) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/stats", handlers.AdminStats)
		admin.POST("/templates/seed", handlers.ReseedTemplates)
	}
}
