package database

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bcheng/portfolio-backend/models"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// Seed wipes the content tables and loads a small demo data set. Only used
// via the SEED_DB switch in main; never runs in normal operation.
func (d Database) Seed() error {
	log.Info().Msg("Seeding database...")

	for _, model := range []any{
		&models.Contact{},
		&models.Project{},
		&models.Skill{},
		&models.ProjectCategory{},
		&models.SkillCategory{},
		&models.AboutSection{},
		&models.SocialLink{},
		&models.Experience{},
		&models.Education{},
		&models.SiteConfig{},
	} {
		if err := d.db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}

	projectCategories := []models.ProjectCategory{
		{Key: "school", Label: "School", Order: 1},
		{Key: "personal", Label: "Personal", Order: 2},
		{Key: "opensource", Label: "Open Source", Order: 3},
	}
	for i := range projectCategories {
		if err := d.projectCategoryRepo.Add(&projectCategories[i]); err != nil {
			return err
		}
	}

	skillCategories := []models.SkillCategory{
		{Key: "web", Label: "Web Development", Order: 1},
		{Key: "devops", Label: "DevOps", Order: 2},
		{Key: "languages", Label: "Languages & Tools", Order: 3},
	}
	for i := range skillCategories {
		if err := d.skillCategoryRepo.Add(&skillCategories[i]); err != nil {
			return err
		}
	}

	projects := []models.Project{
		{
			Title:       "Portfolio",
			Slug:        "portfolio",
			Description: "Personal portfolio site with an integrated content management backend.",
			ShortDesc:   strPtr("Portfolio with built-in CMS"),
			Tags:        []string{"Go", "PostgreSQL"},
			Category:    "personal",
			Featured:    true,
			Published:   true,
			Order:       1,
		},
		{
			Title:       "Raytracer",
			Slug:        "raytracer",
			Description: "3D rendering engine built around ray tracing to generate photorealistic images.",
			ShortDesc:   strPtr("3D rendering engine"),
			Tags:        []string{"C++", "3D", "Rendering"},
			Category:    "school",
			Featured:    true,
			Published:   true,
			Order:       2,
		},
		{
			Title:       "Arcade",
			Slug:        "arcade",
			Description: "Modular arcade game platform with dynamically loaded game and display plugins.",
			ShortDesc:   strPtr("Modular arcade platform"),
			Tags:        []string{"C++", "Design Patterns", "SDL"},
			Category:    "school",
			Published:   true,
			Order:       3,
		},
	}
	for i := range projects {
		if err := d.projectRepo.Add(&projects[i]); err != nil {
			return err
		}
	}

	skills := []models.Skill{
		{Title: "Go", Category: "languages", Rating: 4, Published: true, Order: 1},
		{Title: "C++", Category: "languages", Rating: 5, Published: true, Order: 2},
		{Title: "TypeScript", Category: "web", Rating: 4, Published: true, Order: 1},
		{Title: "PostgreSQL", Category: "web", Rating: 3, Published: true, Order: 2},
		{Title: "Docker", Category: "devops", Rating: 4, Published: true, Order: 1},
		{Title: "GitHub Actions", Category: "devops", Rating: 4, Published: true, Order: 2},
	}
	for i := range skills {
		if err := d.skillRepo.Add(&skills[i]); err != nil {
			return err
		}
	}

	sections := []models.AboutSection{
		{Key: "intro", Title: "Hello", Content: "Software engineering student building web backends and systems tools.", Published: true, Order: 1},
		{Key: "interests", Title: "Interests", Content: "Rendering, infrastructure, and clean APIs.", Published: true, Order: 2},
	}
	for i := range sections {
		if err := d.aboutRepo.Add(&sections[i]); err != nil {
			return err
		}
	}

	socials := []models.SocialLink{
		{Platform: "github", URL: "https://github.com/bcheng", Published: true, Order: 1},
		{Platform: "linkedin", URL: "https://linkedin.com/in/bcheng", Published: true, Order: 2},
	}
	for i := range socials {
		if err := d.socialRepo.Add(&socials[i]); err != nil {
			return err
		}
	}

	experiences := []models.Experience{
		{
			Title:       "Backend Intern",
			Company:     "Acme Corp",
			Location:    strPtr("Paris, France"),
			Type:        "internship",
			StartDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     timePtr(time.Date(2024, 8, 30, 0, 0, 0, 0, time.UTC)),
			Description: "Built internal tooling and REST services in Go.",
			Skills:      []string{"Go", "PostgreSQL", "Docker"},
			Published:   true,
			Order:       1,
		},
	}
	for i := range experiences {
		if err := d.experienceRepo.Add(&experiences[i]); err != nil {
			return err
		}
	}

	educations := []models.Education{
		{
			Title:       "Master of Computer Science",
			School:      "Epitech",
			Location:    strPtr("Paris, France"),
			StartDate:   time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
			Description: strPtr("Project-driven software engineering curriculum."),
			Published:   true,
			Order:       1,
		},
	}
	for i := range educations {
		if err := d.educationRepo.Add(&educations[i]); err != nil {
			return err
		}
	}

	siteConfig := []models.SiteConfig{
		{Key: "site_title", Value: "Benjamin Cheng"},
		{Key: "footer_text", Value: "Built with Go."},
	}
	for i := range siteConfig {
		if err := d.siteConfigRepo.Add(&siteConfig[i]); err != nil {
			return err
		}
	}

	log.Info().Msg("Seeding done")
	return nil
}
