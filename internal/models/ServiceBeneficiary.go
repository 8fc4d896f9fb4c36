package models

// ServiceBeneficiary joins a resident to a service. The same resident may
// appear once per service; the duplicate check lives in the controller.
type ServiceBeneficiary struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	ServiceID  uint    `json:"service_id" gorm:"index"`
	ResidentID uint    `json:"resident_id" gorm:"index"`
	Notes      *string `json:"notes"`
}
