package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `gorm:"size:255" json:"location"`
	SalaryMin   uint   `json:"salary_min,omitempty"`
	SalaryMax   uint   `json:"salary_max,omitempty"`

	// Произвольные атрибуты вакансии (требования, бенефиты и т.п.)
	Details datatypes.JSON `json:"details,omitempty"`

	PostedBy   string `gorm:"size:36;index;not null" json:"posted_by"`
	IsArchived bool   `gorm:"not null;default:false" json:"-"`
}
