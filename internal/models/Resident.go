package models

// Resident is a registered inhabitant of the barangay. Duplicate names are
// permitted; the surrogate key is the only uniqueness constraint.
type Resident struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	LastName    string  `json:"last_name"`
	FirstName   string  `json:"first_name"`
	MiddleName  *string `json:"middle_name"`
	Suffix      *string `json:"suffix"`
	Sex         string  `json:"sex"`
	Birthdate   *Date   `json:"birthdate"`
	CivilStatus *string `json:"civil_status"`
	ContactNo   *string `json:"contact_no"`
	Address     *string `json:"address"`
}
