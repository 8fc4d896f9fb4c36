package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barangay_bis/internal/config"
	"barangay_bis/internal/models"
)

// residentInput declares every acceptable field; optional columns are
// pointers so an omitted field lands as NULL, not an empty string.
type residentInput struct {
	LastName    string       `json:"last_name"`
	FirstName   string       `json:"first_name"`
	MiddleName  *string      `json:"middle_name"`
	Suffix      *string      `json:"suffix"`
	Sex         string       `json:"sex"`
	Birthdate   *models.Date `json:"birthdate"`
	CivilStatus *string      `json:"civil_status"`
	ContactNo   *string      `json:"contact_no"`
	Address     *string      `json:"address"`
}

// ListResidents returns every resident sorted by surname then given name.
func ListResidents(c *gin.Context) {
	var residents []models.Resident
	if err := config.DB.Order("last_name, first_name").Find(&residents).Error; err != nil {
		serverError(c, err, "Error fetching residents")
		return
	}
	c.JSON(http.StatusOK, residents)
}

// CreateResident inserts a resident and returns the full created row.
func CreateResident(c *gin.Context) {
	var input residentInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.LastName == "" || input.FirstName == "" || input.Sex == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "last_name, first_name, and sex are required."})
		return
	}

	resident := models.Resident{
		LastName:    input.LastName,
		FirstName:   input.FirstName,
		MiddleName:  input.MiddleName,
		Suffix:      input.Suffix,
		Sex:         input.Sex,
		Birthdate:   input.Birthdate,
		CivilStatus: input.CivilStatus,
		ContactNo:   input.ContactNo,
		Address:     input.Address,
	}
	if err := config.DB.Create(&resident).Error; err != nil {
		serverError(c, err, "Error creating resident")
		return
	}

	c.JSON(http.StatusCreated, resident)
}

// UpdateResident replaces the full row. A non-existent id is not an error:
// the update touches no rows and the read-back returns null, which callers
// treat as the not-found signal.
func UpdateResident(c *gin.Context) {
	id := c.Param("id")

	var input residentInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.LastName == "" || input.FirstName == "" || input.Sex == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "last_name, first_name, and sex are required."})
		return
	}

	updates := map[string]interface{}{
		"last_name":    input.LastName,
		"first_name":   input.FirstName,
		"middle_name":  input.MiddleName,
		"suffix":       input.Suffix,
		"sex":          input.Sex,
		"birthdate":    input.Birthdate,
		"civil_status": input.CivilStatus,
		"contact_no":   input.ContactNo,
		"address":      input.Address,
	}
	if err := config.DB.Model(&models.Resident{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		serverError(c, err, "Error updating resident")
		return
	}

	var updated models.Resident
	if err := config.DB.First(&updated, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		serverError(c, err, "Error updating resident")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteResident hard-deletes by id. Deleting an id that does not exist is a
// no-op that still reports success.
func DeleteResident(c *gin.Context) {
	if err := config.DB.Delete(&models.Resident{}, "id = ?", c.Param("id")).Error; err != nil {
		serverError(c, err, "Error deleting resident")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resident deleted successfully"})
}
