package service

import (
	"go-labstock/internal/model"
	"go-labstock/internal/repository"
)

// DashboardStats are the aggregate counts shown on the landing page
type DashboardStats struct {
	TotalReagents    int64   `json:"total_reagents"`
	LowStockCount    int64   `json:"low_stock_count"`
	PendingRequests  int64   `json:"pending_requests"`
	TotalWasteVolume float64 `json:"total_waste_volume"`
}

type DashboardService interface {
	GetStats() (*DashboardStats, error)
}

type dashboardService struct {
	reagentRepo repository.ReagentRepository
	requestRepo repository.RequestRepository
	wasteRepo   repository.WasteRepository
}

func NewDashboardService(reagentRepo repository.ReagentRepository, requestRepo repository.RequestRepository, wasteRepo repository.WasteRepository) DashboardService {
	return &dashboardService{
		reagentRepo: reagentRepo,
		requestRepo: requestRepo,
		wasteRepo:   wasteRepo,
	}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalReagents, err = s.reagentRepo.CountAll(); err != nil {
		return nil, err
	}
	if stats.LowStockCount, err = s.reagentRepo.CountLowStock(); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.requestRepo.CountByStatus(model.StatusPending); err != nil {
		return nil, err
	}
	if stats.TotalWasteVolume, err = s.wasteRepo.TotalVolume(); err != nil {
		return nil, err
	}
	return stats, nil
}
