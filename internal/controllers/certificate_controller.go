package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barangay_bis/internal/certificate"
	"barangay_bis/internal/config"
	"barangay_bis/internal/models"
)

type certificateInput struct {
	ResidentID      uint         `json:"resident_id"`
	CertificateType string       `json:"certificate_type"`
	Purpose         string       `json:"purpose"`
	IssueDate       *models.Date `json:"issue_date"`
	PlaceIssued     string       `json:"place_issued"`
	ORNumber        string       `json:"or_number"`
	Amount          string       `json:"amount"`
}

// GenerateCertificate composes resident, officials and barangay profile
// reads into the text generator and the PDF renderer, and streams the
// document back as a download.
func GenerateCertificate(c *gin.Context) {
	var input certificateInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.ResidentID == 0 || input.CertificateType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "resident_id and certificate_type are required."})
		return
	}

	// An unknown type would generate an empty body; reject it up front.
	certType := certificate.Type(input.CertificateType)
	switch certType {
	case certificate.TypeResidency, certificate.TypeIndigency, certificate.TypeClearance:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown certificate type: " + input.CertificateType})
		return
	}

	var resident models.Resident
	if err := config.DB.First(&resident, "id = ?", input.ResidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Resident not found."})
		} else {
			serverError(c, err, "Error generating certificate")
		}
		return
	}

	var profile models.BarangayProfile
	if err := config.DB.First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Barangay profile must be configured before generating certificates."})
		} else {
			serverError(c, err, "Error generating certificate")
		}
		return
	}

	// The roster ordering makes "first match wins" deterministic when more
	// than one official carries a flag.
	var officials []models.Official
	if err := config.DB.Order("order_no, position, full_name").Find(&officials).Error; err != nil {
		serverError(c, err, "Error generating certificate")
		return
	}
	captain := firstOfficial(officials, func(o models.Official) bool {
		return o.IsCaptain || o.Position == "Punong Barangay"
	})
	secretary := firstOfficial(officials, func(o models.Official) bool {
		return o.IsSecretary || o.Position == "Barangay Secretary"
	})

	subject := certificate.Subject{
		FirstName:  resident.FirstName,
		MiddleName: deref(resident.MiddleName),
		LastName:   resident.LastName,
		Suffix:     deref(resident.Suffix),
		Address:    deref(resident.Address),
	}

	body := certificate.Body(subject, certType, input.Purpose,
		profile.BarangayName, profile.Municipality, profile.Province)

	issueDate := time.Now()
	if input.IssueDate != nil {
		issueDate = input.IssueDate.Time
	}

	placeIssued := input.PlaceIssued
	if placeIssued == "" {
		placeIssued = deref(profile.PlaceIssued)
	}
	if placeIssued == "" {
		placeIssued = "Barangay Hall"
	}

	meta := certificate.Meta{
		Province:      profile.Province,
		Municipality:  profile.Municipality,
		BarangayName:  profile.BarangayName,
		Title:         certificate.Title(certType),
		IssueDate:     issueDate,
		PlaceIssued:   placeIssued,
		ORNumber:      input.ORNumber,
		Amount:        input.Amount,
		CaptainName:   captain,
		SecretaryName: secretary,
	}

	pdfBytes, err := certificate.Render(body, meta)
	if err != nil {
		if errors.Is(err, certificate.ErrBodyTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Certificate body is too long to fit on one page."})
			return
		}
		serverError(c, err, "Error generating certificate")
		return
	}

	fileName := certificate.FileName(certType, certificate.DisplayName(subject))
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func firstOfficial(officials []models.Official, match func(models.Official) bool) string {
	for _, o := range officials {
		if match(o) {
			return o.FullName
		}
	}
	return ""
}
