package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcheng/portfolio-backend/models"
)

// ProjectCategoryRepo and SkillCategoryRepo are plain lookup tables. Deletes
// are unconditional: rows still referencing a removed key keep it.

type ProjectCategoryRepo struct {
	db *gorm.DB
}

func NewProjectCategoryRepo(db *gorm.DB) *ProjectCategoryRepo {
	return &ProjectCategoryRepo{db}
}

func (r *ProjectCategoryRepo) FindAll() ([]models.ProjectCategory, error) {
	categories := []models.ProjectCategory{}
	err := r.db.Order("sort_order ASC").Find(&categories).Error
	return categories, err
}

// FindByID returns (nil, nil) when the id does not resolve.
func (r *ProjectCategoryRepo) FindByID(id uuid.UUID) (*models.ProjectCategory, error) {
	var category models.ProjectCategory
	err := r.db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *ProjectCategoryRepo) Add(category *models.ProjectCategory) error {
	return r.db.Create(category).Error
}

func (r *ProjectCategoryRepo) Update(category *models.ProjectCategory) error {
	return r.db.Save(category).Error
}

func (r *ProjectCategoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectCategory{}, "id = ?", id).Error
}

type SkillCategoryRepo struct {
	db *gorm.DB
}

func NewSkillCategoryRepo(db *gorm.DB) *SkillCategoryRepo {
	return &SkillCategoryRepo{db}
}

func (r *SkillCategoryRepo) FindAll() ([]models.SkillCategory, error) {
	categories := []models.SkillCategory{}
	err := r.db.Order("sort_order ASC").Find(&categories).Error
	return categories, err
}

// FindByID returns (nil, nil) when the id does not resolve.
func (r *SkillCategoryRepo) FindByID(id uuid.UUID) (*models.SkillCategory, error) {
	var category models.SkillCategory
	err := r.db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *SkillCategoryRepo) Add(category *models.SkillCategory) error {
	return r.db.Create(category).Error
}

func (r *SkillCategoryRepo) Update(category *models.SkillCategory) error {
	return r.db.Save(category).Error
}

func (r *SkillCategoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SkillCategory{}, "id = ?", id).Error
}
