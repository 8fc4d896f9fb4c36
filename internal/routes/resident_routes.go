package routes

import (
	"barangay_bis/internal/controllers"
	"barangay_bis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ResidentRoutes(r *gin.Engine) {
	// Listing is public; every mutation requires a token
	r.GET("/residents", controllers.ListResidents)

	residents := r.Group("/residents")
	residents.Use(middleware.RequireAuth())
	{
		residents.POST("", controllers.CreateResident)
		residents.PUT("/:id", controllers.UpdateResident)
		residents.DELETE("/:id", controllers.DeleteResident)
	}
}
