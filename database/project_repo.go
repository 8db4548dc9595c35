package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcheng/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectFilter narrows FindAll. PublishedOnly defaults to true at the
// handler; passing false disables the filter entirely rather than selecting
// unpublished rows.
type ProjectFilter struct {
	Category      string
	FeaturedOnly  bool
	PublishedOnly bool
	Limit         int
}

// FindAll returns projects sorted featured first, then by explicit order,
// then newest first.
func (r *ProjectRepo) FindAll(filter ProjectFilter) ([]models.Project, error) {
	q := r.db.Model(&models.Project{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.FeaturedOnly {
		q = q.Where("featured = ?", true)
	}
	if filter.PublishedOnly {
		q = q.Where("published = ?", true)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	projects := []models.Project{}
	err := q.Order("featured DESC").
		Order("sort_order ASC").
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns (nil, nil) when the id does not resolve.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// SlugExists reports whether any project already uses the slug.
func (r *ProjectRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
