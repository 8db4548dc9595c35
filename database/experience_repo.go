package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcheng/portfolio-backend/models"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns timeline entries by explicit order, most recent first on
// ties.
func (r *ExperienceRepo) FindAll(publishedOnly bool, limit int) ([]models.Experience, error) {
	q := r.db.Model(&models.Experience{})
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	experiences := []models.Experience{}
	err := q.Order("sort_order ASC").
		Order("start_date DESC").
		Find(&experiences).Error
	return experiences, err
}

// FindByID returns (nil, nil) when the id does not resolve.
func (r *ExperienceRepo) FindByID(id uuid.UUID) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.First(&experience, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *ExperienceRepo) Add(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

func (r *ExperienceRepo) Update(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

func (r *ExperienceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Experience{}, "id = ?", id).Error
}
