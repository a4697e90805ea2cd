package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gpacalc/internal/app/controllers"
	"github.com/yigit/gpacalc/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	sessionController *controllers.SessionController,
	gpaController *controllers.GPAController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// --- Public routes ---
	v1.GET("/grade-scale", gpaController.GetGradeScale)
	v1.POST("/sessions", sessionController.StartSession)

	// --- Session routes ---
	authenticated := v1.Group("")
	authenticated.Use(sessionMiddleware.SessionAuth())
	{
		authenticated.DELETE("/sessions", sessionController.EndSession)

		subjects := authenticated.Group("/subjects")
		{
			subjects.GET("", gpaController.ListSubjects)
			subjects.POST("", gpaController.AddSubject)
			subjects.DELETE("/:id", gpaController.RemoveSubject)
		}

		gpa := authenticated.Group("/gpa")
		{
			gpa.POST("", gpaController.CalculateGPA)
			gpa.GET("", gpaController.GetLastResult)
		}
	}
}
