package routes

import (
	"github.com/Alienware2000/intentionality-sub000/internal/handlers"
	"github.com/Alienware2000/intentionality-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterTaskRoutes(r gin.IRouter) {
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	{
		tasks.GET("", handlers.ListTasks)
		tasks.POST("", handlers.CreateTask)
		tasks.GET("/:id", handlers.GetTask)
		tasks.PUT("/:id", handlers.UpdateTask)
		tasks.DELETE("/:id", handlers.DeleteTask)

		// Completion drives XP awards, so it gets its own limiter
		tasks.POST("/:id/complete", middleware.CompleteRateLimit(), handlers.CompleteTask)
		tasks.POST("/:id/uncomplete", middleware.CompleteRateLimit(), handlers.UncompleteTask)
	}
}
