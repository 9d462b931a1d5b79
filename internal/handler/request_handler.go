package handler

import (
	"go-labstock/internal/model"
	"go-labstock/internal/service"
	"go-labstock/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RequestHandler struct {
	service service.RequestService
}

func NewRequestHandler(s service.RequestService) *RequestHandler {
	return &RequestHandler{service: s}
}

// Create handles POST /api/v1/requests
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var body CreateRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&body); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": errs[0].String()})
	}

	request, err := h.service.Create(userID, body.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(toRequestResponse(request))
}

// List handles GET /api/v1/requests?onlyMine=bool
func (h *RequestHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	onlyMine := c.QueryBool("onlyMine", false)

	requests, err := h.service.List(userID, getUserRole(c), onlyMine)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toRequestResponses(requests))
}

// Get handles GET /api/v1/requests/:id
func (h *RequestHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	request, err := h.service.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toRequestResponse(request))
}

// UpdateStatus handles PATCH /api/v1/requests/:id/status
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var body UpdateStatusBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&body); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": errs[0].String()})
	}

	request, err := h.service.UpdateStatus(id, model.RequestStatus(body.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toRequestResponse(request))
}
