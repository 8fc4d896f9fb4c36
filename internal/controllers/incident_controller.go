package controllers

import (
	"encoding/binary"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
	"gorm.io/gorm"

	"barangay_bis/internal/config"
	"barangay_bis/internal/models"
)

type incidentInput struct {
	IncidentDate  *models.Date `json:"incident_date"`
	IncidentType  string       `json:"incident_type"`
	Location      *string      `json:"location"`
	Description   *string      `json:"description"`
	ComplainantID *uint        `json:"complainant_id"`
	RespondentID  *uint        `json:"respondent_id"`
	Status        string       `json:"status"`
	GeoPoint      *string      `json:"geo_point"`
}

// incidentRow is an incident joined with the names of the optional
// complainant and respondent residents. GeoPoint carries the stored pin
// back out as a GeoJSON string.
type incidentRow struct {
	models.Incident
	GeoPoint             *string `json:"geo_point" gorm:"-"`
	ComplainantFirstName *string `json:"complainant_first_name"`
	ComplainantLastName  *string `json:"complainant_last_name"`
	RespondentFirstName  *string `json:"respondent_first_name"`
	RespondentLastName   *string `json:"respondent_last_name"`
}

// parseGeoPoint parses a GeoJSON geometry into WKB bytes. Incidents are
// pinned to a single coordinate, so only Point geometries are accepted.
func parseGeoPoint(raw string) ([]byte, error) {
	if raw == "" {
		return nil, nil
	}
	var g geom.T
	if err := gjson.Unmarshal([]byte(raw), &g); err != nil {
		return nil, err
	}
	if _, ok := g.(*geom.Point); !ok {
		return nil, errors.New("geometry must be a Point")
	}
	return wkb.Marshal(g, binary.LittleEndian)
}

// geoPointToJSON converts stored WKB bytes back into a GeoJSON string.
func geoPointToJSON(wkbBytes []byte) (*string, error) {
	if len(wkbBytes) == 0 {
		return nil, nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return nil, err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// ListIncidents returns every incident, newest first, with party names
// joined in.
func ListIncidents(c *gin.Context) {
	var rows []incidentRow
	err := config.DB.Model(&models.Incident{}).
		Select("incidents.*, c.first_name AS complainant_first_name, c.last_name AS complainant_last_name, r.first_name AS respondent_first_name, r.last_name AS respondent_last_name").
		Joins("LEFT JOIN residents c ON c.id = incidents.complainant_id").
		Joins("LEFT JOIN residents r ON r.id = incidents.respondent_id").
		Order("incidents.incident_date DESC").
		Scan(&rows).Error
	if err != nil {
		serverError(c, err, "Error fetching incidents")
		return
	}
	for i := range rows {
		rows[i].GeoPoint, _ = geoPointToJSON(rows[i].Incident.GeoPoint)
	}
	c.JSON(http.StatusOK, rows)
}

func CreateIncident(c *gin.Context) {
	var input incidentInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.IncidentDate == nil || input.IncidentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "incident_date and incident_type are required."})
		return
	}

	status := input.Status
	if status == "" {
		status = "Open"
	}

	geoPoint, err := parseGeoPoint(deref(input.GeoPoint))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid geo_point: " + err.Error()})
		return
	}

	incident := models.Incident{
		IncidentDate:  *input.IncidentDate,
		IncidentType:  input.IncidentType,
		Location:      input.Location,
		Description:   input.Description,
		ComplainantID: input.ComplainantID,
		RespondentID:  input.RespondentID,
		Status:        status,
		GeoPoint:      geoPoint,
	}
	if err := config.DB.Create(&incident).Error; err != nil {
		serverError(c, err, "Error creating incident")
		return
	}
	row := incidentRow{Incident: incident}
	row.GeoPoint, _ = geoPointToJSON(incident.GeoPoint)
	c.JSON(http.StatusCreated, row)
}

func UpdateIncident(c *gin.Context) {
	id := c.Param("id")

	var input incidentInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.IncidentDate == nil || input.IncidentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "incident_date and incident_type are required."})
		return
	}

	status := input.Status
	if status == "" {
		status = "Open"
	}

	geoPoint, err := parseGeoPoint(deref(input.GeoPoint))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid geo_point: " + err.Error()})
		return
	}

	updates := map[string]interface{}{
		"incident_date":  input.IncidentDate,
		"incident_type":  input.IncidentType,
		"location":       input.Location,
		"description":    input.Description,
		"complainant_id": input.ComplainantID,
		"respondent_id":  input.RespondentID,
		"status":         status,
		"geo_point":      geoPoint,
	}
	if err := config.DB.Model(&models.Incident{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		serverError(c, err, "Error updating incident")
		return
	}

	var updated models.Incident
	if err := config.DB.First(&updated, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		serverError(c, err, "Error updating incident")
		return
	}
	row := incidentRow{Incident: updated}
	row.GeoPoint, _ = geoPointToJSON(updated.GeoPoint)
	c.JSON(http.StatusOK, row)
}

func DeleteIncident(c *gin.Context) {
	if err := config.DB.Delete(&models.Incident{}, "id = ?", c.Param("id")).Error; err != nil {
		serverError(c, err, "Error deleting incident")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Incident deleted successfully"})
}
