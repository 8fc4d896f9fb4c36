package routes

import (
	"barangay_bis/internal/controllers"
	"barangay_bis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ServiceRoutes(r *gin.Engine) {
	r.GET("/services", controllers.ListServices)
	r.GET("/services/:id/beneficiaries", controllers.ListServiceBeneficiaries)

	services := r.Group("/services")
	services.Use(middleware.RequireAuth())
	{
		services.POST("", controllers.CreateService)
		services.PUT("/:id", controllers.UpdateService)
		services.DELETE("/:id", controllers.DeleteService)
		services.POST("/:id/beneficiaries", controllers.AddServiceBeneficiary)
	}
}
