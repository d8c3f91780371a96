package courseValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cursos/middleware"
)

var validate = validator.New()

// CreateCoursePayload is the body accepted when registering a course.
type CreateCoursePayload struct {
	Nome        string `json:"nome" validate:"required"`
	Area        string `json:"area"`
	Metodologia string `json:"metodologia" validate:"required"`
	Faixa       string `json:"faixa" validate:"required"`
}

// UpdateCoursePayload is a partial update; absent fields stay nil.
type UpdateCoursePayload struct {
	Nome        *string `json:"nome"`
	Area        *string `json:"area"`
	Metodologia *string `json:"metodologia"`
	Faixa       *string `json:"faixa"`
}

// ExportPayload selects the courses and layout for a PDF export.
type ExportPayload struct {
	CursoIDs []uint `json:"curso_ids"`
	Design   string `json:"design"`
	Titulo   string `json:"titulo"`
}

// requiredMessages maps struct fields to the error message the API
// returns when they are missing.
var requiredMessages = map[string]string{
	"Nome":        "Nome do curso é obrigatório",
	"Metodologia": "Metodologia é obrigatória",
	"Faixa":       "Faixa é obrigatória",
}

// CreateCourse validates the creation payload and stores it in Locals.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if err := validate.Struct(reqData); err != nil {
			if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
				if msg, known := requiredMessages[fieldErrors[0].Field()]; known {
					return middleware.ErrorResponse(c, fiber.StatusBadRequest, msg)
				}
			}
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Dados inválidos")
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse parses the partial update payload and stores it in Locals.
// Provided fields overwrite, absent ones are left alone; values are not
// re-checked against the required rule.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// ExportPDF parses the export payload and rejects empty selections.
func ExportPDF() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ExportPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if len(reqData.CursoIDs) == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Nenhum curso selecionado")
		}

		if reqData.Design == "" {
			reqData.Design = "design1"
		}

		c.Locals("validatedExport", reqData)
		return c.Next()
	}
}
