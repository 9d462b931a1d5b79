package handler

import (
	"go-labstock/internal/news"

	"github.com/gofiber/fiber/v2"
)

type NewsHandler struct {
	service *news.Service
}

func NewNewsHandler(s *news.Service) *NewsHandler {
	return &NewsHandler{service: s}
}

// List returns the external news feed, empty on any upstream failure
// GET /api/v1/news
func (h *NewsHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.Fetch(c.Context()))
}
