package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barangay_bis/internal/config"
	"barangay_bis/internal/models"
)

type serviceInput struct {
	ServiceName string       `json:"service_name"`
	Description *string      `json:"description"`
	ServiceDate *models.Date `json:"service_date"`
	Location    *string      `json:"location"`
}

type beneficiaryInput struct {
	ResidentID uint    `json:"resident_id"`
	Notes      *string `json:"notes"`
}

// serviceRow is a service joined with how many beneficiaries it has.
type serviceRow struct {
	models.Service
	BeneficiaryCount int64 `json:"beneficiary_count"`
}

// beneficiaryRow is a beneficiary joined with the resident's name.
type beneficiaryRow struct {
	ID         uint    `json:"id"`
	ResidentID uint    `json:"resident_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Notes      *string `json:"notes"`
}

// ListServices returns every service with its beneficiary count, newest
// first.
func ListServices(c *gin.Context) {
	var rows []serviceRow
	err := config.DB.Model(&models.Service{}).
		Select("services.*, COUNT(service_beneficiaries.id) AS beneficiary_count").
		Joins("LEFT JOIN service_beneficiaries ON service_beneficiaries.service_id = services.id").
		Group("services.id").
		Order("services.service_date DESC, services.service_name").
		Scan(&rows).Error
	if err != nil {
		serverError(c, err, "Error fetching services")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func CreateService(c *gin.Context) {
	var input serviceInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.ServiceName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "service_name is required."})
		return
	}

	service := models.Service{
		ServiceName: input.ServiceName,
		Description: input.Description,
		ServiceDate: input.ServiceDate,
		Location:    input.Location,
	}
	if err := config.DB.Create(&service).Error; err != nil {
		serverError(c, err, "Error creating service")
		return
	}
	c.JSON(http.StatusCreated, service)
}

func UpdateService(c *gin.Context) {
	id := c.Param("id")

	var input serviceInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.ServiceName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "service_name is required."})
		return
	}

	updates := map[string]interface{}{
		"service_name": input.ServiceName,
		"description":  input.Description,
		"service_date": input.ServiceDate,
		"location":     input.Location,
	}
	if err := config.DB.Model(&models.Service{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		serverError(c, err, "Error updating service")
		return
	}

	var updated models.Service
	if err := config.DB.First(&updated, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		serverError(c, err, "Error updating service")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteService removes a service and its beneficiary rows in one
// transaction, matching the household deletion policy.
func DeleteService(c *gin.Context) {
	id := c.Param("id")
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&models.ServiceBeneficiary{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, "id = ?", id).Error
	})
	if err != nil {
		serverError(c, err, "Error deleting service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// ListServiceBeneficiaries returns a service's beneficiaries joined with
// resident names, sorted by surname.
func ListServiceBeneficiaries(c *gin.Context) {
	var rows []beneficiaryRow
	err := config.DB.Model(&models.ServiceBeneficiary{}).
		Select("service_beneficiaries.id, residents.id AS resident_id, residents.first_name, residents.last_name, service_beneficiaries.notes").
		Joins("JOIN residents ON residents.id = service_beneficiaries.resident_id").
		Where("service_beneficiaries.service_id = ?", c.Param("id")).
		Order("residents.last_name, residents.first_name").
		Scan(&rows).Error
	if err != nil {
		serverError(c, err, "Error fetching beneficiaries")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AddServiceBeneficiary links a resident to a service. The same resident
// may only appear once per service.
func AddServiceBeneficiary(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service ID format."})
		return
	}

	var input beneficiaryInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.ResidentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "resident_id is required for beneficiary."})
		return
	}

	var count int64
	err = config.DB.Model(&models.ServiceBeneficiary{}).
		Where("service_id = ? AND resident_id = ?", serviceID, input.ResidentID).
		Count(&count).Error
	if err != nil {
		serverError(c, err, "Error adding beneficiary")
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Resident is already a beneficiary of this service."})
		return
	}

	beneficiary := models.ServiceBeneficiary{
		ServiceID:  uint(serviceID),
		ResidentID: input.ResidentID,
		Notes:      input.Notes,
	}
	if err := config.DB.Create(&beneficiary).Error; err != nil {
		serverError(c, err, "Error adding beneficiary")
		return
	}

	var row beneficiaryRow
	err = config.DB.Model(&models.ServiceBeneficiary{}).
		Select("service_beneficiaries.id, residents.id AS resident_id, residents.first_name, residents.last_name, service_beneficiaries.notes").
		Joins("JOIN residents ON residents.id = service_beneficiaries.resident_id").
		Where("service_beneficiaries.id = ?", beneficiary.ID).
		Scan(&row).Error
	if err != nil {
		serverError(c, err, "Error adding beneficiary")
		return
	}
	c.JSON(http.StatusCreated, row)
}
