package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AboutSection is a block of free text on the about page, identified by a
// unique key and rendered in ascending order.
type AboutSection struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Key       string    `json:"key" gorm:"type:text;uniqueIndex;not null"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Published bool      `json:"published"`
	Order     int       `json:"order" gorm:"column:sort_order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *AboutSection) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
