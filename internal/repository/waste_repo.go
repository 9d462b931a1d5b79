package repository

import (
	"go-labstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WasteRepository interface {
	CreateContainer(container *model.WasteContainer) error
	FindAllContainers() ([]model.WasteContainer, error)
	FindContainerByID(id uuid.UUID) (*model.WasteContainer, error)
	UpdateContainer(container *model.WasteContainer) error
	DeleteContainer(id uuid.UUID) error

	// FindContainerForUpdate locks the container row within tx for the
	// volume-increment transaction of disposal logging.
	FindContainerForUpdate(tx *gorm.DB, id uuid.UUID) (*model.WasteContainer, error)
	UpdateVolume(tx *gorm.DB, id uuid.UUID, delta float64) error

	CreateLog(tx *gorm.DB, log *model.WasteLog) error
	FindAllLogs() ([]model.WasteLog, error)
	CountLogsForContainer(containerID uuid.UUID) (int64, error)
	TotalVolume() (float64, error)
}

type wasteRepo struct {
	db *gorm.DB
}

func NewWasteRepo(db *gorm.DB) WasteRepository {
	return &wasteRepo{db}
}

func (r *wasteRepo) CreateContainer(container *model.WasteContainer) error {
	return r.db.Create(container).Error
}

func (r *wasteRepo) FindAllContainers() ([]model.WasteContainer, error) {
	var containers []model.WasteContainer
	err := r.db.Order("identifier ASC").Find(&containers).Error
	return containers, err
}

func (r *wasteRepo) FindContainerByID(id uuid.UUID) (*model.WasteContainer, error) {
	var container model.WasteContainer
	err := r.db.First(&container, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &container, nil
}

func (r *wasteRepo) UpdateContainer(container *model.WasteContainer) error {
	return r.db.Save(container).Error
}

func (r *wasteRepo) DeleteContainer(id uuid.UUID) error {
	return r.db.Delete(&model.WasteContainer{}, "id = ?", id).Error
}

func (r *wasteRepo) FindContainerForUpdate(tx *gorm.DB, id uuid.UUID) (*model.WasteContainer, error) {
	var container model.WasteContainer
	err := forUpdate(tx).First(&container, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &container, nil
}

func (r *wasteRepo) UpdateVolume(tx *gorm.DB, id uuid.UUID, delta float64) error {
	return tx.Model(&model.WasteContainer{}).
		Where("id = ?", id).
		Update("current_volume", gorm.Expr("current_volume + ?", delta)).Error
}

func (r *wasteRepo) CreateLog(tx *gorm.DB, log *model.WasteLog) error {
	return tx.Create(log).Error
}

func (r *wasteRepo) FindAllLogs() ([]model.WasteLog, error) {
	var logs []model.WasteLog
	err := r.db.Preload("User").Preload("Container").
		Order("date DESC").Find(&logs).Error
	return logs, err
}

func (r *wasteRepo) CountLogsForContainer(containerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.WasteLog{}).Where("container_id = ?", containerID).Count(&count).Error
	return count, err
}

func (r *wasteRepo) TotalVolume() (float64, error) {
	var total float64
	err := r.db.Model(&model.WasteContainer{}).
		Select("COALESCE(SUM(current_volume), 0)").Scan(&total).Error
	return total, err
}
