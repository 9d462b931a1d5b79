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

// RequestItemInput is one requested reagent line
type RequestItemInput struct {
	ReagentID uuid.UUID
	Quantity  float64
}

// CreateRequestInput carries a validated withdrawal request
type CreateRequestInput struct {
	Items     []RequestItemInput
	Reason    string
	UsageDate time.Time
}

type RequestService interface {
	Create(userID uuid.UUID, input CreateRequestInput) (*model.Request, error)
	UpdateStatus(requestID uuid.UUID, newStatus model.RequestStatus) (*model.Request, error)
	List(userID uuid.UUID, role string, onlyMine bool) ([]model.Request, error)
	GetByID(id uuid.UUID) (*model.Request, error)
}

type requestService struct {
	requestRepo repository.RequestRepository
	reagentRepo repository.ReagentRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewRequestService(requestRepo repository.RequestRepository, reagentRepo repository.ReagentRepository, db *gorm.DB, hub *ws.Hub) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		reagentRepo: reagentRepo,
		db:          db,
		wsHub:       hub,
	}
}

// Create validates stock availability and persists the request with its
// items as one unit. The availability check is advisory only; stock is
// not reserved until the request is completed.
func (s *requestService) Create(userID uuid.UUID, input CreateRequestInput) (*model.Request, error) {
	if len(input.Items) == 0 {
		return nil, apperror.Validation("request must contain at least one item")
	}

	items := make([]model.RequestItem, 0, len(input.Items))
	for _, item := range input.Items {
		reagent, err := s.reagentRepo.FindByID(item.ReagentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.NotFound(fmt.Sprintf("reagent %s not found", item.ReagentID))
			}
			return nil, err
		}
		if reagent.Quantity < item.Quantity {
			return nil, apperror.InsufficientStock(fmt.Sprintf(
				"insufficient stock for %s: requested %g %s, available %g",
				reagent.Name, item.Quantity, reagent.Unit, reagent.Quantity))
		}
		items = append(items, model.RequestItem{
			ReagentID: item.ReagentID,
			Quantity:  item.Quantity,
		})
	}

	request := &model.Request{
		UserID:    userID,
		Status:    model.StatusPending,
		Reason:    input.Reason,
		UsageDate: normalizeUsageDate(input.UsageDate),
		Items:     items,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}

	return s.requestRepo.FindByID(request.ID)
}

// UpdateStatus applies the strict lifecycle machine:
// PENDING -> {APPROVED, REJECTED}, APPROVED -> COMPLETED.
// Completion re-validates stock and decrements it atomically with the
// status change; on any failure nothing is applied.
func (s *requestService) UpdateStatus(requestID uuid.UUID, newStatus model.RequestStatus) (*model.Request, error) {
	if !model.ValidStatus(newStatus) || newStatus == model.StatusPending {
		return nil, apperror.Validation(fmt.Sprintf("invalid status %q", newStatus))
	}

	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("request not found")
		}
		return nil, err
	}

	if !model.CanTransition(request.Status, newStatus) {
		return nil, apperror.Validation(fmt.Sprintf(
			"cannot transition request from %s to %s", request.Status, newStatus))
	}

	if newStatus == model.StatusCompleted {
		if err := s.complete(request); err != nil {
			return nil, err
		}
	} else {
		// Conditional on the status we read; a concurrent decision
		// between the read and this update leaves zero rows changed.
		n, err := s.requestRepo.UpdateStatus(s.db, request.ID, request.Status, newStatus)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, apperror.Validation(fmt.Sprintf(
				"request is no longer %s", request.Status))
		}
	}

	updated, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.EventRequestStatus, map[string]interface{}{
		"request_id": updated.ID,
		"status":     updated.Status,
	})
	return updated, nil
}

// complete performs the all-or-nothing stock decrement. Each reagent
// row is locked, re-checked against the item quantity (stock may have
// moved since approval) and decremented in one transaction. The final
// status flip is conditional on the row still being APPROVED, so a
// second completer working from a stale read rolls back without
// touching stock.
func (s *requestService) complete(request *model.Request) error {
	type stockDelta struct {
		reagentID uuid.UUID
		name      string
		newStock  float64
	}
	var deltas []stockDelta

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range request.Items {
			reagent, err := s.reagentRepo.FindForUpdate(tx, item.ReagentID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperror.NotFound(fmt.Sprintf("reagent %s not found", item.ReagentID))
				}
				return err
			}
			if reagent.Quantity < item.Quantity {
				return apperror.InsufficientStock(fmt.Sprintf(
					"insufficient stock for %s: requested %g %s, available %g",
					reagent.Name, item.Quantity, reagent.Unit, reagent.Quantity))
			}
			newStock := reagent.Quantity - item.Quantity
			if err := s.reagentRepo.UpdateQuantity(tx, reagent.ID, newStock); err != nil {
				return err
			}
			deltas = append(deltas, stockDelta{reagentID: reagent.ID, name: reagent.Name, newStock: newStock})
		}
		n, err := s.requestRepo.UpdateStatus(tx, request.ID, model.StatusApproved, model.StatusCompleted)
		if err != nil {
			return err
		}
		if n == 0 {
			return apperror.Validation("request is no longer APPROVED")
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"request_id": request.ID,
		"items":      len(request.Items),
	}).Info("request completed, stock decremented")

	for _, d := range deltas {
		s.wsHub.Publish(ws.EventStockChanged, map[string]interface{}{
			"reagent_id": d.reagentID,
			"name":       d.name,
			"quantity":   d.newStock,
		})
	}
	return nil
}

func (s *requestService) List(userID uuid.UUID, role string, onlyMine bool) ([]model.Request, error) {
	if role == model.RoleAdmin && !onlyMine {
		return s.requestRepo.FindAll()
	}
	return s.requestRepo.FindByUser(userID)
}

func (s *requestService) GetByID(id uuid.UUID) (*model.Request, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("request not found")
		}
		return nil, err
	}
	return request, nil
}

// normalizeUsageDate pins the usage date to noon UTC so round-tripping
// through clients in other timezones cannot shift the calendar day.
func normalizeUsageDate(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}
