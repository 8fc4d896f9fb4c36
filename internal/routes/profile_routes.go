package routes

import (
	"barangay_bis/internal/controllers"
	"barangay_bis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ProfileRoutes(r *gin.Engine) {
	r.GET("/barangay-profile", controllers.GetBarangayProfile)
	r.PUT("/barangay-profile", middleware.RequireAuth(), controllers.SaveBarangayProfile)
}
