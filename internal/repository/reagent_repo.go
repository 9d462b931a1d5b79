package repository

import (
	"go-labstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReagentRepository interface {
	Create(reagent *model.Reagent) error
	FindAll() ([]model.Reagent, error)
	FindByID(id uuid.UUID) (*model.Reagent, error)
	Update(reagent *model.Reagent) error
	Delete(id uuid.UUID) error
	CountAll() (int64, error)
	CountLowStock() (int64, error)

	// FindForUpdate locks the row within tx for the stock-decrement
	// transaction of request fulfillment.
	FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Reagent, error)
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity float64) error
}

type reagentRepo struct {
	db *gorm.DB
}

func NewReagentRepo(db *gorm.DB) ReagentRepository {
	return &reagentRepo{db}
}

func (r *reagentRepo) Create(reagent *model.Reagent) error {
	return r.db.Create(reagent).Error
}

func (r *reagentRepo) FindAll() ([]model.Reagent, error) {
	var reagents []model.Reagent
	err := r.db.Order("name ASC").Find(&reagents).Error
	return reagents, err
}

func (r *reagentRepo) FindByID(id uuid.UUID) (*model.Reagent, error) {
	var reagent model.Reagent
	err := r.db.First(&reagent, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reagent, nil
}

func (r *reagentRepo) Update(reagent *model.Reagent) error {
	return r.db.Save(reagent).Error
}

func (r *reagentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Reagent{}, "id = ?", id).Error
}

func (r *reagentRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Reagent{}).Count(&count).Error
	return count, err
}

func (r *reagentRepo) CountLowStock() (int64, error) {
	var count int64
	err := r.db.Model(&model.Reagent{}).Where("quantity < min_quantity").Count(&count).Error
	return count, err
}

func (r *reagentRepo) FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Reagent, error) {
	var reagent model.Reagent
	err := forUpdate(tx).First(&reagent, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reagent, nil
}

func (r *reagentRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity float64) error {
	return tx.Model(&model.Reagent{}).
		Where("id = ?", id).
		Update("quantity", newQuantity).Error
}
