package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcheng/portfolio-backend/models"
)

type SiteConfigRepo struct {
	db *gorm.DB
}

func NewSiteConfigRepo(db *gorm.DB) *SiteConfigRepo {
	return &SiteConfigRepo{db}
}

func (r *SiteConfigRepo) FindAll() ([]models.SiteConfig, error) {
	entries := []models.SiteConfig{}
	err := r.db.Order("key ASC").Find(&entries).Error
	return entries, err
}

// FindByID returns (nil, nil) when the id does not resolve.
func (r *SiteConfigRepo) FindByID(id uuid.UUID) (*models.SiteConfig, error) {
	var entry models.SiteConfig
	err := r.db.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *SiteConfigRepo) Add(entry *models.SiteConfig) error {
	return r.db.Create(entry).Error
}

func (r *SiteConfigRepo) Update(entry *models.SiteConfig) error {
	return r.db.Save(entry).Error
}

func (r *SiteConfigRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SiteConfig{}, "id = ?", id).Error
}
