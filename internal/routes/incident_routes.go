package routes

import (
	"barangay_bis/internal/controllers"
	"barangay_bis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func IncidentRoutes(r *gin.Engine) {
	r.GET("/incidents", controllers.ListIncidents)

	incidents := r.Group("/incidents")
	incidents.Use(middleware.RequireAuth())
	{
		incidents.POST("", controllers.CreateIncident)
		incidents.PUT("/:id", controllers.UpdateIncident)
		incidents.DELETE("/:id", controllers.DeleteIncident)
	}
}
