package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcheng/portfolio-backend/models"
)

type SocialRepo struct {
	db *gorm.DB
}

func NewSocialRepo(db *gorm.DB) *SocialRepo {
	return &SocialRepo{db}
}

func (r *SocialRepo) FindAll(publishedOnly bool) ([]models.SocialLink, error) {
	q := r.db.Model(&models.SocialLink{})
	if publishedOnly {
		q = q.Where("published = ?", true)
	}

	links := []models.SocialLink{}
	err := q.Order("sort_order ASC").Find(&links).Error
	return links, err
}

// FindByID returns (nil, nil) when the id does not resolve.
func (r *SocialRepo) FindByID(id uuid.UUID) (*models.SocialLink, error) {
	var link models.SocialLink
	err := r.db.First(&link, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *SocialRepo) Add(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

func (r *SocialRepo) Update(link *models.SocialLink) error {
	return r.db.Save(link).Error
}

func (r *SocialRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SocialLink{}, "id = ?", id).Error
}
