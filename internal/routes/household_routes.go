package routes

import (
	"barangay_bis/internal/controllers"
	"barangay_bis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func HouseholdRoutes(r *gin.Engine) {
	r.GET("/households", controllers.ListHouseholds)
	r.GET("/households/:id/members", controllers.ListHouseholdMembers)

	households := r.Group("/households")
	households.Use(middleware.RequireAuth())
	{
		households.POST("", controllers.CreateHousehold)
		households.PUT("/:id", controllers.UpdateHousehold)
		households.DELETE("/:id", controllers.DeleteHousehold)
		households.POST("/:id/members", controllers.AddHouseholdMember)
		households.PUT("/:id/members/:memberId", controllers.UpdateHouseholdMember)
	}

	// Member deletion keeps its own top-level path
	r.DELETE("/member/:id", middleware.RequireAuth(), controllers.DeleteHouseholdMember)
}
