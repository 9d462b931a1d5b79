package handler

import (
	"go-labstock/internal/service"
	"go-labstock/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WasteHandler struct {
	service service.WasteService
}

func NewWasteHandler(s service.WasteService) *WasteHandler {
	return &WasteHandler{service: s}
}

func (h *WasteHandler) ListContainers(c *fiber.Ctx) error {
	containers, err := h.service.ListContainers()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(containers)
}

func (h *WasteHandler) CreateContainer(c *fiber.Ctx) error {
	var body ContainerBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&body); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": errs[0].String()})
	}

	container := body.toModel()
	if err := h.service.CreateContainer(container); err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(container)
}

func (h *WasteHandler) UpdateContainer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid container ID"})
	}

	var body ContainerBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&body); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": errs[0].String()})
	}

	container, err := h.service.UpdateContainer(id, body.toModel())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(container)
}

func (h *WasteHandler) DeleteContainer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid container ID"})
	}

	if err := h.service.DeleteContainer(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Container deleted"})
}

func (h *WasteHandler) ListLogs(c *fiber.Ctx) error {
	logs, err := h.service.ListLogs()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(logs)
}

func (h *WasteHandler) CreateLog(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var body WasteLogBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&body); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": errs[0].String()})
	}

	entry, err := h.service.CreateLog(userID, service.CreateLogInput{
		Description: body.Description,
		Quantity:    body.Quantity,
		ContainerID: body.ContainerID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(entry)
}
