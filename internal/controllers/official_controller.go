package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barangay_bis/internal/config"
	"barangay_bis/internal/models"
)

// ListOfficials returns every official in roster order.
func ListOfficials(c *gin.Context) {
	var officials []models.Official
	if err := config.DB.Order("order_no, position, full_name").Find(&officials).Error; err != nil {
		serverError(c, err, "Error fetching officials")
		return
	}
	c.JSON(http.StatusOK, officials)
}

// saveSignature stores an uploaded signature image under the upload
// directory with a millisecond timestamp prefix to dodge name collisions,
// and returns the public path persisted on the row.
func saveSignature(c *gin.Context, file *multipart.FileHeader) (string, error) {
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	dst := filepath.Join(config.UploadDir(), "signatures", filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return "/uploads/signatures/" + filename, nil
}

// parseOrderNo treats an absent order_no as 0; a present value must be an
// integer.
func parseOrderNo(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// CreateOfficial inserts an official from a multipart form, with an
// optional signature image.
func CreateOfficial(c *gin.Context) {
	fullName := c.PostForm("full_name")
	position := c.PostForm("position")
	if fullName == "" || position == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "full_name and position are required."})
		return
	}

	orderNo, err := parseOrderNo(c.PostForm("order_no"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "order_no must be a whole number."})
		return
	}

	official := models.Official{
		FullName:    fullName,
		Position:    position,
		OrderNo:     orderNo,
		IsCaptain:   c.PostForm("is_captain") == "1",
		IsSecretary: c.PostForm("is_secretary") == "1",
	}

	if file, err := c.FormFile("signature"); err == nil {
		path, err := saveSignature(c, file)
		if err != nil {
			serverError(c, err, "Error creating official")
			return
		}
		official.SignaturePath = &path
	}

	if err := config.DB.Create(&official).Error; err != nil {
		serverError(c, err, "Error creating official")
		return
	}
	c.JSON(http.StatusCreated, official)
}

// UpdateOfficial replaces an official's row from a multipart form. Without
// a new signature file the stored path is kept, unless the form explicitly
// clears it with clear_signature=1.
func UpdateOfficial(c *gin.Context) {
	id := c.Param("id")

	fullName := c.PostForm("full_name")
	position := c.PostForm("position")
	if fullName == "" || position == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "full_name and position are required."})
		return
	}

	orderNo, err := parseOrderNo(c.PostForm("order_no"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "order_no must be a whole number."})
		return
	}

	updates := map[string]interface{}{
		"full_name":    fullName,
		"position":     position,
		"order_no":     orderNo,
		"is_captain":   c.PostForm("is_captain") == "1",
		"is_secretary": c.PostForm("is_secretary") == "1",
	}

	if file, err := c.FormFile("signature"); err == nil {
		path, err := saveSignature(c, file)
		if err != nil {
			serverError(c, err, "Error updating official")
			return
		}
		updates["signature_path"] = path
	} else if c.PostForm("clear_signature") == "1" {
		updates["signature_path"] = nil
	}

	if err := config.DB.Model(&models.Official{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		serverError(c, err, "Error updating official")
		return
	}

	var updated models.Official
	if err := config.DB.First(&updated, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		serverError(c, err, "Error updating official")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteOfficial(c *gin.Context) {
	if err := config.DB.Delete(&models.Official{}, "id = ?", c.Param("id")).Error; err != nil {
		serverError(c, err, "Error deleting official")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Official deleted successfully"})
}
