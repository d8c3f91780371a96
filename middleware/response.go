package middleware

import "github.com/gofiber/fiber/v2"

// SuccessResponse sends payload with the success flag set, using the
// envelope the frontend expects.
func SuccessResponse(c *fiber.Ctx, statusCode int, payload fiber.Map) error {
	if payload == nil {
		payload = fiber.Map{}
	}
	payload["success"] = true
	return c.Status(statusCode).JSON(payload)
}

// ErrorResponse sends a failure envelope with a single error message.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
