package handler

import (
	"go-labstock/internal/service"
	"go-labstock/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReagentHandler struct {
	service service.ReagentService
}

func NewReagentHandler(s service.ReagentService) *ReagentHandler {
	return &ReagentHandler{service: s}
}

func (h *ReagentHandler) List(c *fiber.Ctx) error {
	reagents, err := h.service.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toReagentResponses(reagents))
}

func (h *ReagentHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid reagent ID"})
	}

	reagent, err := h.service.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toReagentResponse(reagent))
}

func (h *ReagentHandler) Create(c *fiber.Ctx) error {
	var body ReagentBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&body); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": errs[0].String()})
	}

	reagent, err := h.service.Create(body.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(toReagentResponse(reagent))
}

func (h *ReagentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid reagent ID"})
	}

	var body ReagentBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&body); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": errs[0].String()})
	}

	reagent, err := h.service.Update(id, body.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toReagentResponse(reagent))
}

func (h *ReagentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid reagent ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Reagent deleted"})
}
