package repository

import (
	"go-labstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(request *model.Request) error
	FindByID(id uuid.UUID) (*model.Request, error)
	FindAll() ([]model.Request, error)
	FindByUser(userID uuid.UUID) ([]model.Request, error)
	// UpdateStatus flips the status only while the row still holds the
	// expected prior status, reporting how many rows changed so callers
	// can detect a concurrent decision.
	UpdateStatus(tx *gorm.DB, id uuid.UUID, from, to model.RequestStatus) (int64, error)
	CountByStatus(status model.RequestStatus) (int64, error)

	// CountOpenItemsForReagent counts PENDING/APPROVED request items
	// referencing a reagent; used to block reagent deletion.
	CountOpenItemsForReagent(reagentID uuid.UUID) (int64, error)
}

type requestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) RequestRepository {
	return &requestRepo{db}
}

// Create persists the request and its items as one unit
func (r *requestRepo) Create(request *model.Request) error {
	return r.db.Create(request).Error
}

func (r *requestRepo) FindByID(id uuid.UUID) (*model.Request, error) {
	var request model.Request
	err := r.db.Preload("User").Preload("Items.Reagent").First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepo) FindAll() ([]model.Request, error) {
	var requests []model.Request
	err := r.db.Preload("User").Preload("Items.Reagent").
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *requestRepo) FindByUser(userID uuid.UUID) ([]model.Request, error) {
	var requests []model.Request
	err := r.db.Preload("User").Preload("Items.Reagent").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *requestRepo) UpdateStatus(tx *gorm.DB, id uuid.UUID, from, to model.RequestStatus) (int64, error) {
	res := tx.Model(&model.Request{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *requestRepo) CountByStatus(status model.RequestStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.Request{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *requestRepo) CountOpenItemsForReagent(reagentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.RequestItem{}).
		Joins("JOIN requests ON requests.id = request_items.request_id").
		Where("request_items.reagent_id = ?", reagentID).
		Where("requests.status IN ?", []model.RequestStatus{model.StatusPending, model.StatusApproved}).
		Where("requests.deleted_at IS NULL").
		Count(&count).Error
	return count, err
}
