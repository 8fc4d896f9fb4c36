package models

// HouseholdMember joins a resident to a household with a label for how the
// member relates to the household head.
type HouseholdMember struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	HouseholdID    uint    `json:"household_id" gorm:"index"`
	ResidentID     uint    `json:"resident_id" gorm:"index"`
	RelationToHead *string `json:"relation_to_head"`
}
