package routes

import (
	"barangay_bis/internal/controllers"
	"barangay_bis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func CertificateRoutes(r *gin.Engine) {
	// Issuing a certificate is an official act, so it sits behind the gate
	r.POST("/certificates", middleware.RequireAuth(), controllers.GenerateCertificate)
}
