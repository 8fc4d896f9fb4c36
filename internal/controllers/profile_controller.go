package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barangay_bis/internal/config"
	"barangay_bis/internal/models"
)

type profileInput struct {
	BarangayName string  `json:"barangay_name"`
	Municipality string  `json:"municipality"`
	Province     string  `json:"province"`
	PlaceIssued  *string `json:"place_issued"`
}

// GetBarangayProfile returns the singleton profile row, or null when none
// has been saved yet.
func GetBarangayProfile(c *gin.Context) {
	var profile models.BarangayProfile
	if err := config.DB.First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		serverError(c, err, "Error fetching barangay profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveBarangayProfile upserts the single profile row.
func SaveBarangayProfile(c *gin.Context) {
	var input profileInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.BarangayName == "" || input.Municipality == "" || input.Province == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "barangay_name, municipality, and province are required."})
		return
	}

	var profile models.BarangayProfile
	err := config.DB.First(&profile).Error
	switch {
	case err == nil:
		profile.BarangayName = input.BarangayName
		profile.Municipality = input.Municipality
		profile.Province = input.Province
		profile.PlaceIssued = input.PlaceIssued
		if err := config.DB.Save(&profile).Error; err != nil {
			serverError(c, err, "Error saving barangay profile")
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.BarangayProfile{
			BarangayName: input.BarangayName,
			Municipality: input.Municipality,
			Province:     input.Province,
			PlaceIssued:  input.PlaceIssued,
		}
		if err := config.DB.Create(&profile).Error; err != nil {
			serverError(c, err, "Error saving barangay profile")
			return
		}
	default:
		serverError(c, err, "Error saving barangay profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
