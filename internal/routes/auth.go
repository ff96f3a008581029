package routes

import (
	"github.com/Alienware2000/intentionality-sub000/internal/handlers"
	"github.com/Alienware2000/intentionality-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/register", middleware.AuthRateLimit(), handlers.Register)
	r.POST("/login", middleware.AuthRateLimit(), handlers.Login)
	r.GET("/check-username", handlers.CheckUsername)
}
