package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the full API surface under /api. Public versus
// protected is decided by the auth gate middleware, not per route here,
// so the tree stays a flat description of the surface.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handlers.authHandler.login())
			r.Post("/logout", handlers.authHandler.logout())
			r.Get("/check", handlers.authHandler.check())
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.projectHandler.getAllProjects())
			r.Get("/{projectID}", handlers.projectHandler.getProject())
			r.Post("/", handlers.projectHandler.createProject())
			r.Put("/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
		})

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", handlers.skillHandler.getAllSkills())
			r.Get("/{skillID}", handlers.skillHandler.getSkill())
			r.Post("/", handlers.skillHandler.createSkill())
			r.Put("/{skillID}", handlers.skillHandler.updateSkill())
			r.Delete("/{skillID}", handlers.skillHandler.deleteSkill())
		})

		r.Route("/about", func(r chi.Router) {
			r.Get("/", handlers.aboutHandler.getAllSections())
			r.Get("/{sectionID}", handlers.aboutHandler.getSection())
			r.Post("/", handlers.aboutHandler.createSection())
			r.Put("/{sectionID}", handlers.aboutHandler.updateSection())
			r.Delete("/{sectionID}", handlers.aboutHandler.deleteSection())
		})

		r.Route("/contact", func(r chi.Router) {
			r.Get("/", handlers.contactHandler.getAllContacts())
			r.Post("/", handlers.contactHandler.createContact())
			r.Put("/{contactID}", handlers.contactHandler.updateContact())
			r.Delete("/{contactID}", handlers.contactHandler.deleteContact())
		})

		r.Route("/experiences", func(r chi.Router) {
			r.Get("/", handlers.experienceHandler.getAllExperiences())
			r.Get("/{experienceID}", handlers.experienceHandler.getExperience())
			r.Post("/", handlers.experienceHandler.createExperience())
			r.Put("/{experienceID}", handlers.experienceHandler.updateExperience())
			r.Delete("/{experienceID}", handlers.experienceHandler.deleteExperience())
		})

		r.Route("/educations", func(r chi.Router) {
			r.Get("/", handlers.educationHandler.getAllEducations())
			r.Get("/{educationID}", handlers.educationHandler.getEducation())
			r.Post("/", handlers.educationHandler.createEducation())
			r.Put("/{educationID}", handlers.educationHandler.updateEducation())
			r.Delete("/{educationID}", handlers.educationHandler.deleteEducation())
		})

		r.Route("/project-categories", func(r chi.Router) {
			r.Get("/", handlers.projectCategoryHandler.getAllCategories())
			r.Get("/{categoryID}", handlers.projectCategoryHandler.getCategory())
			r.Post("/", handlers.projectCategoryHandler.createCategory())
			r.Put("/{categoryID}", handlers.projectCategoryHandler.updateCategory())
			r.Delete("/{categoryID}", handlers.projectCategoryHandler.deleteCategory())
		})

		r.Route("/skill-categories", func(r chi.Router) {
			r.Get("/", handlers.skillCategoryHandler.getAllCategories())
			r.Get("/{categoryID}", handlers.skillCategoryHandler.getCategory())
			r.Post("/", handlers.skillCategoryHandler.createCategory())
			r.Put("/{categoryID}", handlers.skillCategoryHandler.updateCategory())
			r.Delete("/{categoryID}", handlers.skillCategoryHandler.deleteCategory())
		})

		r.Route("/socials", func(r chi.Router) {
			r.Get("/", handlers.socialHandler.getAllSocials())
			r.Get("/{socialID}", handlers.socialHandler.getSocial())
			r.Post("/", handlers.socialHandler.createSocial())
			r.Put("/{socialID}", handlers.socialHandler.updateSocial())
			r.Delete("/{socialID}", handlers.socialHandler.deleteSocial())
		})

		r.Route("/site-config", func(r chi.Router) {
			r.Get("/", handlers.siteConfigHandler.getAllEntries())
			r.Get("/{entryID}", handlers.siteConfigHandler.getEntry())
			r.Post("/", handlers.siteConfigHandler.createEntry())
			r.Put("/{entryID}", handlers.siteConfigHandler.updateEntry())
			r.Delete("/{entryID}", handlers.siteConfigHandler.deleteEntry())
		})
	})
}
