package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cursos/middleware"
	"cursos/services/report"
	courseValidator "cursos/validators/course"
)

// Export renders the selected courses to a PDF report and streams it back
// as an attachment.
func (ctrl *Controller) Export(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedExport").(*courseValidator.ExportPayload)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	courses, err := ctrl.courses.FindByIDs(reqData.CursoIDs)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	document, err := report.Generate(courses, reqData.Design, reqData.Titulo)
	if err != nil {
		if errors.Is(err, report.ErrUnsupportedLayout) || errors.Is(err, report.ErrEmptySelection) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio_cursos.pdf"`)
	return c.Send(document)
}
