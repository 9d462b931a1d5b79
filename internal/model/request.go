package model

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusApproved  RequestStatus = "APPROVED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCompleted RequestStatus = "COMPLETED"
)

// allowedTransitions is the strict lifecycle guard. REJECTED and
// COMPLETED are terminal.
var allowedTransitions = map[RequestStatus][]RequestStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusCompleted},
}

// ValidStatus reports whether s is a known request status
func ValidStatus(s RequestStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is a legal lifecycle step
func CanTransition(from, to RequestStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Request is a researcher's withdrawal request. Items are fixed at
// creation; only status and timestamps mutate afterward.
type Request struct {
	BaseModel
	UserID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status    RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Reason    string        `gorm:"type:text" json:"reason"`
	UsageDate time.Time     `json:"usage_date"`
	Items     []RequestItem `gorm:"foreignKey:RequestID" json:"items"`
}

// RequestItem is one reagent line of a request. Immutable once created.
type RequestItem struct {
	BaseModel
	RequestID uuid.UUID `gorm:"type:uuid;not null;index" json:"request_id"`
	ReagentID uuid.UUID `gorm:"type:uuid;not null;index" json:"reagent_id" validate:"uuid_required"`
	Reagent   *Reagent  `gorm:"foreignKey:ReagentID" json:"reagent,omitempty"`
	Quantity  float64   `gorm:"not null" json:"quantity" validate:"required,gt=0"`
}
