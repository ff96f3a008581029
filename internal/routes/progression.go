package routes

import (
	"github.com/Alienware2000/intentionality-sub000/internal/handlers"
	"github.com/Alienware2000/intentionality-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterProgressionRoutes(r gin.IRouter) {
	progression := r.Group("/progression")
	progression.Use(middleware.AuthMiddleware())
	{
		progression.GET("/profile", handlers.GetProfile)
		progression.GET("/achievements", handlers.GetAchievements)
		progression.GET("/challenges", handlers.GetTodayChallenges)
		progression.GET("/activity", handlers.GetActivityHistory)
		progression.GET("/streak-freezes", handlers.GetStreakFreezes)
	}
}
