package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"barangay_bis/internal/config"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery + request logging before any route is registered
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	ResidentRoutes(r)
	HouseholdRoutes(r)
	IncidentRoutes(r)
	ServiceRoutes(r)
	OfficialRoutes(r)
	ProfileRoutes(r)
	CertificateRoutes(r)

	// Uploaded signature images are publicly served
	r.Static("/uploads", config.UploadDir())

	return r
}
