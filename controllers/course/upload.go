package controllers

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"

	"cursos/middleware"
	"cursos/services/importer"
	"cursos/utils"
)

// Upload receives a spreadsheet, imports its rows and reports the outcome.
// The file is buffered to the upload directory for the duration of the
// request and removed afterwards.
func (ctrl *Controller) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("arquivo")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Nenhum arquivo foi enviado")
	}

	if file.Filename == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Nenhum arquivo foi selecionado")
	}

	if !importer.AllowedExtension(file.Filename) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, importer.ErrUnsupportedFormat.Error())
	}

	path, err := utils.SaveUploadedFile(file, ctrl.uploadDir)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao processar planilha: "+err.Error())
	}
	defer os.Remove(path)

	result, err := ctrl.importer.ImportFile(path)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao processar planilha: "+err.Error())
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"cursos_adicionados": result.AddedCount,
		"erros":              result.Errors,
		"detalhes":           result.Added,
	})
}
