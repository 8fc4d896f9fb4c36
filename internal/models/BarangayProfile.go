package models

// BarangayProfile is a singleton row holding the locality printed on
// certificates. Reads return null until the first upsert.
type BarangayProfile struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	BarangayName string  `json:"barangay_name"`
	Municipality string  `json:"municipality"`
	Province     string  `json:"province"`
	PlaceIssued  *string `json:"place_issued"`
}
