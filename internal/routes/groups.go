package routes

import (
	"github.com/Alienware2000/intentionality-sub000/internal/handlers"
	"github.com/Alienware2000/intentionality-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterGroupRoutes(r gin.IRouter) {
	groups := r.Group("/groups")
	groups.Use(middleware.AuthMiddleware())
	{
		groups.GET("", handlers.ListMyGroups)
		groups.POST("", handlers.CreateGroup)
		groups.POST("/join", handlers.JoinGroup)
		groups.GET("/:id/leaderboard", handlers.GetGroupLeaderboard)
	}
}
