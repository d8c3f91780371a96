package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cursos/middleware"
	courseService "cursos/services/course"
	"cursos/services/importer"
	courseValidator "cursos/validators/course"
)

// Controller holds the services the course endpoints operate on.
type Controller struct {
	courses   *courseService.Service
	importer  *importer.Importer
	uploadDir string
}

func New(courses *courseService.Service, imp *importer.Importer, uploadDir string) *Controller {
	return &Controller{
		courses:   courses,
		importer:  imp,
		uploadDir: uploadDir,
	}
}

// List returns the active courses matching the query filters
func (ctrl *Controller) List(c *fiber.Ctx) error {
	filters := courseService.Filters{
		Area:        c.Query("area"),
		Methodology: c.Query("metodologia"),
		Tier:        c.Query("faixa"),
		Search:      c.Query("busca"),
		SearchField: c.Query("tipo_busca", "curso"),
	}

	courses, err := ctrl.courses.List(filters)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"cursos": courses,
		"total":  len(courses),
	})
}

// Create registers a new course
func (ctrl *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCoursePayload)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	record, err := ctrl.courses.Create(courseService.CreateInput{
		Name:        reqData.Nome,
		Area:        reqData.Area,
		Methodology: reqData.Metodologia,
		Tier:        reqData.Faixa,
	})
	if err != nil {
		var ve *courseService.ValidationError
		if errors.As(err, &ve) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, ve.Message)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"curso":   record,
		"message": "Curso criado com sucesso",
	})
}

// Update overwrites the fields present in the payload
func (ctrl *Controller) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCoursePayload)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	record, err := ctrl.courses.Update(uint(id), courseService.UpdateInput{
		Name:        reqData.Nome,
		Area:        reqData.Area,
		Methodology: reqData.Metodologia,
		Tier:        reqData.Faixa,
	})
	if err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"curso":   record,
		"message": "Curso atualizado com sucesso",
	})
}

// Delete permanently removes a course
func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
	}

	if err := ctrl.courses.Delete(uint(id)); err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso não encontrado")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Curso removido permanentemente",
	})
}

// Options returns the distinct values available for the filter dropdowns
func (ctrl *Controller) Options(c *fiber.Ctx) error {
	opts, err := ctrl.courses.Options()
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"opcoes": opts,
	})
}

// Status reports API liveness
func (ctrl *Controller) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "online",
		"message": "API do Sistema de Gestão de Cursos está funcionando",
		"version": "1.0",
	})
}

// DebugCourses dumps every stored record, inactive ones included
func (ctrl *Controller) DebugCourses(c *fiber.Ctx) error {
	courses, err := ctrl.courses.All()
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(courses)
}
