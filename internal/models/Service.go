package models

type Service struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	ServiceName string  `json:"service_name"`
	Description *string `json:"description"`
	ServiceDate *Date   `json:"service_date"`
	Location    *string `json:"location"`
}
