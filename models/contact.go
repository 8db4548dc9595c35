package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is a message submitted through the public contact form. Only the
// admin mutates it afterwards (mark read, delete). Archived is excluded from
// listings but no write path sets it.
type Contact struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName string    `json:"firstName" gorm:"type:text;not null"`
	LastName  string    `json:"lastName" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null"`
	Phone     *string   `json:"phone,omitempty" gorm:"type:text"`
	Subject   *string   `json:"subject,omitempty" gorm:"type:text"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Read      bool      `json:"read"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Contact) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
