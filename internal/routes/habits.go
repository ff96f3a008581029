package routes

import (
	"github.com/Alienware2000/intentionality-sub000/internal/handlers"
	"github.com/Alienware2000/intentionality-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterHabitRoutes(r gin.IRouter) {
	habits := r.Group("/habits")
	habits.Use(middleware.AuthMiddleware())
	{
		habits.GET("", handlers.ListHabits)
		habits.POST("", handlers.CreateHabit)
		habits.PUT("/:id", handlers.UpdateHabit)
		habits.DELETE("/:id", handlers.DeleteHabit)

		habits.POST("/:id/check-in", middleware.CompleteRateLimit(), handlers.CheckInHabit)
	}
}
