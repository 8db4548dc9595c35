package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Experience is a display-only timeline entry on the experience page.
type Experience struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string     `json:"title" gorm:"type:text;not null"`
	Company     string     `json:"company" gorm:"type:text;not null"`
	Location    *string    `json:"location,omitempty" gorm:"type:text"`
	Type        string     `json:"type" gorm:"type:text"`
	StartDate   time.Time  `json:"startDate" gorm:"not null"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Skills      []string   `json:"skills" gorm:"serializer:json"`
	Published   bool       `json:"published"`
	Order       int        `json:"order" gorm:"column:sort_order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (e *Experience) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
