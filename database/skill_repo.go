package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcheng/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

type SkillFilter struct {
	Category      string
	PublishedOnly bool
}

// FindAll returns skills sorted by category, explicit order, then title.
func (r *SkillRepo) FindAll(filter SkillFilter) ([]models.Skill, error) {
	q := r.db.Model(&models.Skill{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.PublishedOnly {
		q = q.Where("published = ?", true)
	}

	skills := []models.Skill{}
	err := q.Order("category ASC").
		Order("sort_order ASC").
		Order("title ASC").
		Find(&skills).Error
	return skills, err
}

// FindByID returns (nil, nil) when the id does not resolve.
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}
