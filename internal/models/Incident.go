package models

// Incident is a blotter entry. Complainant and respondent are optional
// references into residents; neither is verified before insert.
type Incident struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	IncidentDate  Date    `json:"incident_date"`
	IncidentType  string  `json:"incident_type"`
	Location      *string `json:"location"`
	Description   *string `json:"description"`
	ComplainantID *uint   `json:"complainant_id"`
	RespondentID  *uint   `json:"respondent_id"`
	Status        string  `json:"status" gorm:"default:Open"`
	// GeoPoint holds the spot pin as WKB (SRID 4326); the API speaks GeoJSON.
	GeoPoint []byte `json:"-" gorm:"type:bytea"`
}
