package api

import (
	"github.com/bcheng/portfolio-backend/auth"
	"github.com/bcheng/portfolio-backend/config"
	"github.com/bcheng/portfolio-backend/database"
	"github.com/bcheng/portfolio-backend/services"
)

type routeHandlers struct {
	authHandler            authHandler
	projectHandler         projectHandler
	skillHandler           skillHandler
	aboutHandler           aboutHandler
	contactHandler         contactHandler
	experienceHandler      experienceHandler
	educationHandler       educationHandler
	projectCategoryHandler projectCategoryHandler
	skillCategoryHandler   skillCategoryHandler
	socialHandler          socialHandler
	siteConfigHandler      siteConfigHandler
}

// initializeHandlers creates and returns all handlers organized in a
// routeHandlers struct
func initializeHandlers(cfg *config.Config, database database.Database, sessions *auth.Sessions) *routeHandlers {
	mailer := services.NewMailer(cfg)

	return &routeHandlers{
		authHandler:            newAuthHandler(sessions, cfg.IsProduction()),
		projectHandler:         newProjectHandler(database.ProjectRepo()),
		skillHandler:           newSkillHandler(database.SkillRepo()),
		aboutHandler:           newAboutHandler(database.AboutRepo()),
		contactHandler:         newContactHandler(database.ContactRepo(), mailer),
		experienceHandler:      newExperienceHandler(database.ExperienceRepo()),
		educationHandler:       newEducationHandler(database.EducationRepo()),
		projectCategoryHandler: newProjectCategoryHandler(database.ProjectCategoryRepo()),
		skillCategoryHandler:   newSkillCategoryHandler(database.SkillCategoryRepo()),
		socialHandler:          newSocialHandler(database.SocialRepo()),
		siteConfigHandler:      newSiteConfigHandler(database.SiteConfigRepo()),
	}
}
