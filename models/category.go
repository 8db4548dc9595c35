package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectCategory is a lookup row joined by key to Project.Category.
// Deleting a category leaves existing projects pointing at the old key.
type ProjectCategory struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Key       string    `json:"key" gorm:"type:text;uniqueIndex;not null"`
	Label     string    `json:"label" gorm:"type:text;not null"`
	Order     int       `json:"order" gorm:"column:sort_order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *ProjectCategory) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// SkillCategory is a lookup row joined by key to Skill.Category.
type SkillCategory struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Key       string    `json:"key" gorm:"type:text;uniqueIndex;not null"`
	Label     string    `json:"label" gorm:"type:text;not null"`
	Order     int       `json:"order" gorm:"column:sort_order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *SkillCategory) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
