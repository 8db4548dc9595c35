package database

import (
	"gorm.io/gorm"

	"github.com/bcheng/portfolio-backend/models"
)

// Database aggregates one repository per entity over a shared GORM instance.
type Database struct {
	projectRepo         *ProjectRepo
	skillRepo           *SkillRepo
	aboutRepo           *AboutRepo
	contactRepo         *ContactRepo
	experienceRepo      *ExperienceRepo
	educationRepo       *EducationRepo
	projectCategoryRepo *ProjectCategoryRepo
	skillCategoryRepo   *SkillCategoryRepo
	socialRepo          *SocialRepo
	siteConfigRepo      *SiteConfigRepo

	db *gorm.DB
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:         NewProjectRepo(db),
		skillRepo:           NewSkillRepo(db),
		aboutRepo:           NewAboutRepo(db),
		contactRepo:         NewContactRepo(db),
		experienceRepo:      NewExperienceRepo(db),
		educationRepo:       NewEducationRepo(db),
		projectCategoryRepo: NewProjectCategoryRepo(db),
		skillCategoryRepo:   NewSkillCategoryRepo(db),
		socialRepo:          NewSocialRepo(db),
		siteConfigRepo:      NewSiteConfigRepo(db),
		db:                  db,
	}
}

// AutoMigrate creates or updates the content tables.
func (d Database) AutoMigrate() error {
	return d.db.AutoMigrate(
		&models.Project{},
		&models.Skill{},
		&models.AboutSection{},
		&models.Contact{},
		&models.Experience{},
		&models.Education{},
		&models.ProjectCategory{},
		&models.SkillCategory{},
		&models.SocialLink{},
		&models.SiteConfig{},
	)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) AboutRepo() *AboutRepo {
	return d.aboutRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) EducationRepo() *EducationRepo {
	return d.educationRepo
}

func (d Database) ProjectCategoryRepo() *ProjectCategoryRepo {
	return d.projectCategoryRepo
}

func (d Database) SkillCategoryRepo() *SkillCategoryRepo {
	return d.skillCategoryRepo
}

func (d Database) SocialRepo() *SocialRepo {
	return d.socialRepo
}

func (d Database) SiteConfigRepo() *SiteConfigRepo {
	return d.siteConfigRepo
}
