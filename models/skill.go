package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is a single entry on the skills page. Category is a key into
// SkillCategory, joined by value rather than a foreign key constraint.
type Skill struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Category  string    `json:"category" gorm:"type:text;index;not null"`
	Icon      *string   `json:"icon,omitempty" gorm:"type:text"`
	Rating    int       `json:"rating"`
	Published bool      `json:"published"`
	Order     int       `json:"order" gorm:"column:sort_order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Skill) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
