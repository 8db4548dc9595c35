package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a portfolio entry. Slug is unique and immutable after
// creation; collisions at create time get an incrementing numeric suffix.
type Project struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Slug        string    `json:"slug" gorm:"type:text;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	ShortDesc   *string   `json:"shortDesc,omitempty" gorm:"type:text"`
	Tags        []string  `json:"tags" gorm:"serializer:json"`
	Category    string    `json:"category" gorm:"type:text;index;not null"`
	ImageURL    *string   `json:"imageUrl,omitempty" gorm:"type:text"`
	GithubURL   *string   `json:"githubUrl,omitempty" gorm:"type:text"`
	LiveURL     *string   `json:"liveUrl,omitempty" gorm:"type:text"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	Order       int       `json:"order" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
