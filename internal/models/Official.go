package models

// Official is a barangay officer. IsCaptain and IsSecretary are not forced
// to be unique; certificate signatories take the first match in the
// canonical ordering (order_no, position, full_name).
type Official struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	FullName      string  `json:"full_name"`
	Position      string  `json:"position"`
	OrderNo       int     `json:"order_no"`
	IsCaptain     bool    `json:"is_captain"`
	IsSecretary   bool    `json:"is_secretary"`
	SignaturePath *string `json:"signature_path"`
}
