package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/service"
)

// JokeHandler proxies the joke API.
type JokeHandler struct {
	jokes *service.JokeService
}

// NewJokeHandler constructs handler.
func NewJokeHandler(jokes *service.JokeService) *JokeHandler {
	return &JokeHandler{jokes: jokes}
}

// Random handles GET /api/joke.
func (h *JokeHandler) Random(c *fiber.Ctx) error {
	joke, err := h.jokes.Random(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": joke})
}
