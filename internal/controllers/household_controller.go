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

type householdInput struct {
	HouseholdName string  `json:"household_name"`
	Address       string  `json:"address"`
	Purok         *string `json:"purok"`
}

type memberInput struct {
	ResidentID     uint    `json:"resident_id"`
	RelationToHead *string `json:"relation_to_head"`
}

// householdRow is a household joined with how many members it has.
type householdRow struct {
	models.Household
	MemberCount int64 `json:"member_count"`
}

// memberRow is a household member joined with the resident's name.
type memberRow struct {
	ID             uint    `json:"id"`
	HouseholdID    uint    `json:"household_id"`
	ResidentID     uint    `json:"resident_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	RelationToHead *string `json:"relation_to_head"`
}

// ListHouseholds returns every household with its member count, sorted by
// household name.
func ListHouseholds(c *gin.Context) {
	var rows []householdRow
	err := config.DB.Model(&models.Household{}).
		Select("households.*, COUNT(household_members.id) AS member_count").
		Joins("LEFT JOIN household_members ON household_members.household_id = households.id").
		Group("households.id").
		Order("households.household_name").
		Scan(&rows).Error
	if err != nil {
		serverError(c, err, "Error fetching households")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func CreateHousehold(c *gin.Context) {
	var input householdInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.HouseholdName == "" || input.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "household_name and address are required."})
		return
	}

	household := models.Household{
		HouseholdName: input.HouseholdName,
		Address:       input.Address,
		Purok:         input.Purok,
	}
	if err := config.DB.Create(&household).Error; err != nil {
		serverError(c, err, "Error creating household")
		return
	}
	c.JSON(http.StatusCreated, household)
}

func UpdateHousehold(c *gin.Context) {
	id := c.Param("id")

	var input householdInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.HouseholdName == "" || input.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "household_name and address are required."})
		return
	}

	updates := map[string]interface{}{
		"household_name": input.HouseholdName,
		"address":        input.Address,
		"purok":          input.Purok,
	}
	if err := config.DB.Model(&models.Household{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		serverError(c, err, "Error updating household")
		return
	}

	var updated models.Household
	if err := config.DB.First(&updated, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		serverError(c, err, "Error updating household")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHousehold removes a household and its member rows in one
// transaction, so a delete never strands join rows.
func DeleteHousehold(c *gin.Context) {
	id := c.Param("id")
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("household_id = ?", id).Delete(&models.HouseholdMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Household{}, "id = ?", id).Error
	})
	if err != nil {
		serverError(c, err, "Error deleting household")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Household deleted successfully"})
}

// ListHouseholdMembers returns a household's members joined with resident
// names, sorted by surname.
func ListHouseholdMembers(c *gin.Context) {
	var rows []memberRow
	err := config.DB.Model(&models.HouseholdMember{}).
		Select("household_members.id, household_members.household_id, residents.id AS resident_id, residents.first_name, residents.last_name, household_members.relation_to_head").
		Joins("JOIN residents ON residents.id = household_members.resident_id").
		Where("household_members.household_id = ?", c.Param("id")).
		Order("residents.last_name, residents.first_name").
		Scan(&rows).Error
	if err != nil {
		serverError(c, err, "Error fetching household members")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AddHouseholdMember links a resident into a household.
func AddHouseholdMember(c *gin.Context) {
	householdID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid household ID format."})
		return
	}

	var input memberInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.ResidentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "resident_id is required to add member."})
		return
	}

	member := models.HouseholdMember{
		HouseholdID:    uint(householdID),
		ResidentID:     input.ResidentID,
		RelationToHead: input.RelationToHead,
	}
	if err := config.DB.Create(&member).Error; err != nil {
		serverError(c, err, "Error adding household member")
		return
	}

	var row memberRow
	err = config.DB.Model(&models.HouseholdMember{}).
		Select("household_members.id, household_members.household_id, residents.id AS resident_id, residents.first_name, residents.last_name, household_members.relation_to_head").
		Joins("JOIN residents ON residents.id = household_members.resident_id").
		Where("household_members.id = ?", member.ID).
		Scan(&row).Error
	if err != nil {
		serverError(c, err, "Error adding household member")
		return
	}
	c.JSON(http.StatusCreated, row)
}

// UpdateHouseholdMember changes the relation label, the only mutable column
// on the join row.
func UpdateHouseholdMember(c *gin.Context) {
	var input struct {
		RelationToHead *string `json:"relation_to_head"`
	}
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	err := config.DB.Model(&models.HouseholdMember{}).
		Where("id = ? AND household_id = ?", c.Param("memberId"), c.Param("id")).
		Update("relation_to_head", input.RelationToHead).Error
	if err != nil {
		serverError(c, err, "Error updating member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member updated successfully"})
}

// DeleteHouseholdMember removes one member row by its own id.
func DeleteHouseholdMember(c *gin.Context) {
	if err := config.DB.Delete(&models.HouseholdMember{}, "id = ?", c.Param("id")).Error; err != nil {
		serverError(c, err, "Error deleting member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
