package service

import (
	"errors"
	"fmt"
	"time"

	"go-labstock/internal/apperror"
	"go-labstock/internal/model"
	"go-labstock/internal/repository"
	"go-labstock/internal/ws"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreateLogInput carries a validated disposal entry
type CreateLogInput struct {
	Description string
	Quantity    float64
	ContainerID uuid.UUID
}

type WasteService interface {
	CreateLog(userID uuid.UUID, input CreateLogInput) (*model.WasteLog, error)
	ListLogs() ([]model.WasteLog, error)
	CreateContainer(container *model.WasteContainer) error
	UpdateContainer(id uuid.UUID, container *model.WasteContainer) (*model.WasteContainer, error)
	ListContainers() ([]model.WasteContainer, error)
	DeleteContainer(id uuid.UUID) error
}

type wasteService struct {
	wasteRepo repository.WasteRepository
	db        *gorm.DB
	wsHub     *ws.Hub
}

func NewWasteService(wasteRepo repository.WasteRepository, db *gorm.DB, hub *ws.Hub) WasteService {
	return &wasteService{
		wasteRepo: wasteRepo,
		db:        db,
		wsHub:     hub,
	}
}

// CreateLog validates container state and capacity, then increments the
// container volume and inserts the log row in one transaction. Both
// writes succeed or both roll back.
func (s *wasteService) CreateLog(userID uuid.UUID, input CreateLogInput) (*model.WasteLog, error) {
	if input.Description == "" {
		return nil, apperror.Validation("description is required")
	}
	if input.Quantity <= 0 {
		return nil, apperror.Validation("quantity must be greater than zero")
	}
	if input.ContainerID == uuid.Nil {
		return nil, apperror.Validation("container id is required")
	}

	var created *model.WasteLog
	var newVolume float64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		container, err := s.wasteRepo.FindContainerForUpdate(tx, input.ContainerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("waste container not found")
			}
			return err
		}
		if !container.IsActive {
			return apperror.InactiveContainer(fmt.Sprintf(
				"container %s is inactive", container.Identifier))
		}
		if container.CurrentVolume+input.Quantity > container.Capacity {
			return apperror.CapacityExceeded(fmt.Sprintf(
				"container %s cannot take %g: %g of %g used",
				container.Identifier, input.Quantity, container.CurrentVolume, container.Capacity))
		}

		if err := s.wasteRepo.UpdateVolume(tx, container.ID, input.Quantity); err != nil {
			return err
		}

		entry := &model.WasteLog{
			Description: input.Description,
			Quantity:    input.Quantity,
			Date:        time.Now(),
			UserID:      userID,
			ContainerID: container.ID,
		}
		if err := s.wasteRepo.CreateLog(tx, entry); err != nil {
			return err
		}

		created = entry
		newVolume = container.CurrentVolume + input.Quantity
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"container_id": input.ContainerID,
		"quantity":     input.Quantity,
	}).Info("waste disposal recorded")

	s.wsHub.Publish(ws.EventVolumeChanged, map[string]interface{}{
		"container_id":   input.ContainerID,
		"current_volume": newVolume,
	})
	return created, nil
}

func (s *wasteService) ListLogs() ([]model.WasteLog, error) {
	return s.wasteRepo.FindAllLogs()
}

func (s *wasteService) CreateContainer(container *model.WasteContainer) error {
	if container.CurrentVolume > container.Capacity {
		return apperror.Validation("current volume cannot exceed capacity")
	}
	return s.wasteRepo.CreateContainer(container)
}

func (s *wasteService) UpdateContainer(id uuid.UUID, container *model.WasteContainer) (*model.WasteContainer, error) {
	existing, err := s.wasteRepo.FindContainerByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("waste container not found")
		}
		return nil, err
	}

	existing.Identifier = container.Identifier
	existing.Type = container.Type
	existing.Capacity = container.Capacity
	existing.Location = container.Location
	existing.IsActive = container.IsActive
	if existing.CurrentVolume > existing.Capacity {
		return nil, apperror.Validation("capacity cannot be reduced below current volume")
	}

	if err := s.wasteRepo.UpdateContainer(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *wasteService) ListContainers() ([]model.WasteContainer, error) {
	return s.wasteRepo.FindAllContainers()
}

// DeleteContainer refuses to drop a container that has disposal history
func (s *wasteService) DeleteContainer(id uuid.UUID) error {
	if _, err := s.wasteRepo.FindContainerByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("waste container not found")
		}
		return err
	}

	count, err := s.wasteRepo.CountLogsForContainer(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.Conflict("container has disposal history")
	}
	return s.wasteRepo.DeleteContainer(id)
}
