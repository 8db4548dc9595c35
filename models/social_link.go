package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialLink is an external profile link shown in the site footer.
type SocialLink struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Platform  string    `json:"platform" gorm:"type:text;not null"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	Icon      *string   `json:"icon,omitempty" gorm:"type:text"`
	Published bool      `json:"published"`
	Order     int       `json:"order" gorm:"column:sort_order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *SocialLink) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
