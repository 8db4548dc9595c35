package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcheng/portfolio-backend/models"
)

type AboutRepo struct {
	db *gorm.DB
}

func NewAboutRepo(db *gorm.DB) *AboutRepo {
	return &AboutRepo{db}
}

// FindAll returns about sections in display order, oldest first on ties.
func (r *AboutRepo) FindAll(publishedOnly bool) ([]models.AboutSection, error) {
	q := r.db.Model(&models.AboutSection{})
	if publishedOnly {
		q = q.Where("published = ?", true)
	}

	sections := []models.AboutSection{}
	err := q.Order("sort_order ASC").
		Order("created_at ASC").
		Find(&sections).Error
	return sections, err
}

// FindByID returns (nil, nil) when the id does not resolve.
func (r *AboutRepo) FindByID(id uuid.UUID) (*models.AboutSection, error) {
	var section models.AboutSection
	err := r.db.First(&section, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *AboutRepo) Add(section *models.AboutSection) error {
	return r.db.Create(section).Error
}

func (r *AboutRepo) Update(section *models.AboutSection) error {
	return r.db.Save(section).Error
}

func (r *AboutRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AboutSection{}, "id = ?", id).Error
}
