package models

type Household struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	HouseholdName string  `json:"household_name"`
	Address       string  `json:"address"`
	Purok         *string `json:"purok"`
}
