package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcheng/portfolio-backend/models"
)

type EducationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{db}
}

func (r *EducationRepo) FindAll(publishedOnly bool) ([]models.Education, error) {
	q := r.db.Model(&models.Education{})
	if publishedOnly {
		q = q.Where("published = ?", true)
	}

	educations := []models.Education{}
	err := q.Order("sort_order ASC").
		Order("start_date DESC").
		Find(&educations).Error
	return educations, err
}

// FindByID returns (nil, nil) when the id does not resolve.
func (r *EducationRepo) FindByID(id uuid.UUID) (*models.Education, error) {
	var education models.Education
	err := r.db.First(&education, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &education, nil
}

func (r *EducationRepo) Add(education *models.Education) error {
	return r.db.Create(education).Error
}

func (r *EducationRepo) Update(education *models.Education) error {
	return r.db.Save(education).Error
}

func (r *EducationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Education{}, "id = ?", id).Error
}
