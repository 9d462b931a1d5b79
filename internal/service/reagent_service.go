package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-labstock/internal/apperror"
	"go-labstock/internal/model"
	"go-labstock/internal/pubchem"
	"go-labstock/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CompoundLookup resolves compound properties by CAS number.
// *pubchem.Client implements it; tests substitute a fake.
type CompoundLookup interface {
	LookupCAS(ctx context.Context, cas string) (*pubchem.Compound, error)
}

// ReagentInput carries validated reagent fields from the API boundary
type ReagentInput struct {
	Name           string
	Category       string
	Quantity       float64
	Unit           string
	MinQuantity    float64
	Location       string
	ExpirationDate time.Time
	IsControlled   bool
	CASNumber      string
	Formula        string
}

type ReagentService interface {
	Create(input ReagentInput) (*model.Reagent, error)
	Update(id uuid.UUID, input ReagentInput) (*model.Reagent, error)
	List() ([]model.Reagent, error)
	GetByID(id uuid.UUID) (*model.Reagent, error)
	Delete(id uuid.UUID) error
}

type reagentService struct {
	reagentRepo repository.ReagentRepository
	requestRepo repository.RequestRepository
	compounds   CompoundLookup // nil disables enrichment
}

func NewReagentService(reagentRepo repository.ReagentRepository, requestRepo repository.RequestRepository, compounds CompoundLookup) ReagentService {
	return &reagentService{
		reagentRepo: reagentRepo,
		requestRepo: requestRepo,
		compounds:   compounds,
	}
}

func (s *reagentService) Create(input ReagentInput) (*model.Reagent, error) {
	reagent := s.apply(&model.Reagent{}, input)

	// Best-effort PubChem enrichment: a CAS number without a formula
	// gets one filled in; failures are logged and ignored.
	if reagent.CASNumber != "" && reagent.Formula == "" && s.compounds != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if compound, err := s.compounds.LookupCAS(ctx, reagent.CASNumber); err != nil {
			logrus.WithError(err).WithField("cas", reagent.CASNumber).
				Warn("pubchem enrichment failed")
		} else {
			reagent.Formula = compound.Formula
		}
	}

	if err := s.reagentRepo.Create(reagent); err != nil {
		return nil, err
	}
	return reagent, nil
}

func (s *reagentService) Update(id uuid.UUID, input ReagentInput) (*model.Reagent, error) {
	existing, err := s.reagentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("reagent not found")
		}
		return nil, err
	}

	updated := s.apply(existing, input)
	if err := s.reagentRepo.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *reagentService) List() ([]model.Reagent, error) {
	return s.reagentRepo.FindAll()
}

func (s *reagentService) GetByID(id uuid.UUID) (*model.Reagent, error) {
	reagent, err := s.reagentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("reagent not found")
		}
		return nil, err
	}
	return reagent, nil
}

// Delete refuses to remove a reagent still referenced by an open
// (PENDING or APPROVED) request. Completed and rejected history does
// not block deletion.
func (s *reagentService) Delete(id uuid.UUID) error {
	if _, err := s.reagentRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("reagent not found")
		}
		return err
	}

	open, err := s.requestRepo.CountOpenItemsForReagent(id)
	if err != nil {
		return err
	}
	if open > 0 {
		return apperror.Conflict("reagent is referenced by open requests")
	}
	return s.reagentRepo.Delete(id)
}

// apply copies input onto a reagent, normalizing the unit to upper case
// and falling back to "now" for a missing expiration date.
func (s *reagentService) apply(reagent *model.Reagent, input ReagentInput) *model.Reagent {
	reagent.Name = input.Name
	reagent.Category = input.Category
	reagent.Quantity = input.Quantity
	reagent.Unit = strings.ToUpper(input.Unit)
	reagent.MinQuantity = input.MinQuantity
	reagent.Location = input.Location
	reagent.IsControlled = input.IsControlled
	reagent.CASNumber = input.CASNumber
	if input.Formula != "" {
		reagent.Formula = input.Formula
	}
	if input.ExpirationDate.IsZero() {
		reagent.ExpirationDate = time.Now()
	} else {
		reagent.ExpirationDate = input.ExpirationDate
	}
	return reagent
}
