package routes

import (
	"github.com/Alienware2000/intentionality-sub000/internal/handlers"
	"github.com/Alienware2000/intentionality-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Planner covers focus sessions, schedule blocks, and brain dumps.
func RegisterPlannerRoutes(r gin.IRouter) {
	focus := r.Group("/focus")
	focus.Use(middleware.AuthMiddleware())
	{
		focus.GET("", handlers.ListFocusSessions)
		focus.POST("/finish", middleware.CompleteRateLimit(), handlers.FinishFocusSession)
	}

	schedule := r.Group("/schedule")
	schedule.Use(middleware.AuthMiddleware())
	{
		schedule.GET("", handlers.ListScheduleBlocks)
		schedule.POST("", handlers.CreateScheduleBlock)
		schedule.DELETE("/:id", handlers.DeleteScheduleBlock)
		schedule.POST("/:id/complete", middleware.CompleteRateLimit(), handlers.CompleteScheduleBlock)
	}

	brainDump := r.Group("/brain-dump")
	brainDump.Use(middleware.AuthMiddleware())
	{
		brainDump.GET("", handlers.ListBrainDumps)
		brainDump.POST("", handlers.CreateBrainDump)
	}
}
