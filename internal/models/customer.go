package models

import (
	"time"
)

type Customer struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name" gorm:"not null"`
	Phone             string    `json:"phone" gorm:"not null"` // digits only, normalized on input
	ShirtMeasurements *string   `json:"shirt_measurements" gorm:"type:text"`
	PantsMeasurements *string   `json:"pants_measurements" gorm:"type:text"`
	OtherMeasurements *string   `json:"other_measurements" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
