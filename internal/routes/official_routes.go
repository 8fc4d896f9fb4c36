package routes

import (
	"barangay_bis/internal/controllers"
	"barangay_bis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func OfficialRoutes(r *gin.Engine) {
	r.GET("/officials", controllers.ListOfficials)

	officials := r.Group("/officials")
	officials.Use(middleware.RequireAuth())
	{
		officials.POST("", controllers.CreateOfficial)
		officials.PUT("/:id", controllers.UpdateOfficial)
		officials.DELETE("/:id", controllers.DeleteOfficial)
	}
}
