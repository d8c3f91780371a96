package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "cursos/controllers/course"
	validators "cursos/validators/course"
)

// SetupCourseRoutes registers the catalog API under /api
func SetupCourseRoutes(app *fiber.App, ctrl *controllers.Controller) {
	api := app.Group("/api")

	api.Get("/status", ctrl.Status)
	api.Get("/debug/cursos", ctrl.DebugCourses)

	cursos := api.Group("/cursos")

	cursos.Get("/", ctrl.List)
	cursos.Post("/", validators.CreateCourse(), ctrl.Create)

	// fixed paths must be registered before the :id routes
	cursos.Get("/opcoes", ctrl.Options)
	cursos.Post("/upload", ctrl.Upload)
	cursos.Post("/export/pdf", validators.ExportPDF(), ctrl.Export)

	cursos.Put("/:id", validators.UpdateCourse(), ctrl.Update)
	cursos.Delete("/:id", ctrl.Delete)
}
