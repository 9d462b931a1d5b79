package handler

import (
	"time"

	"go-labstock/internal/model"
	"go-labstock/internal/service"

	"github.com/google/uuid"
)

// ReagentBody is the API shape of a reagent write. The storage column
// min_quantity is exposed as minStockLevel; this file is the only place
// where the two names meet.
type ReagentBody struct {
	Name           string  `json:"name" validate:"required"`
	Category       string  `json:"category"`
	Quantity       float64 `json:"quantity" validate:"gte=0"`
	Unit           string  `json:"unit" validate:"required"`
	MinStockLevel  float64 `json:"minStockLevel" validate:"gte=0"`
	Location       string  `json:"location"`
	ExpirationDate string  `json:"expirationDate"`
	IsControlled   bool    `json:"isControlled"`
	CASNumber      string  `json:"casNumber"`
	Formula        string  `json:"formula"`
}

func (b *ReagentBody) toInput() service.ReagentInput {
	return service.ReagentInput{
		Name:           b.Name,
		Category:       b.Category,
		Quantity:       b.Quantity,
		Unit:           b.Unit,
		MinQuantity:    b.MinStockLevel,
		Location:       b.Location,
		ExpirationDate: parseDate(b.ExpirationDate),
		IsControlled:   b.IsControlled,
		CASNumber:      b.CASNumber,
		Formula:        b.Formula,
	}
}

// ReagentResponse mirrors ReagentBody for reads
type ReagentResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	MinStockLevel  float64   `json:"minStockLevel"`
	Location       string    `json:"location"`
	ExpirationDate time.Time `json:"expirationDate"`
	IsControlled   bool      `json:"isControlled"`
	CASNumber      string    `json:"casNumber"`
	Formula        string    `json:"formula"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toReagentResponse(r *model.Reagent) ReagentResponse {
	return ReagentResponse{
		ID:             r.ID,
		Name:           r.Name,
		Category:       r.Category,
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		MinStockLevel:  r.MinQuantity,
		Location:       r.Location,
		ExpirationDate: r.ExpirationDate,
		IsControlled:   r.IsControlled,
		CASNumber:      r.CASNumber,
		Formula:        r.Formula,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toReagentResponses(reagents []model.Reagent) []ReagentResponse {
	out := make([]ReagentResponse, len(reagents))
	for i := range reagents {
		out[i] = toReagentResponse(&reagents[i])
	}
	return out
}

// RequestItemResponse is one request line with its reagent snapshot
type RequestItemResponse struct {
	ID        uuid.UUID        `json:"id"`
	ReagentID uuid.UUID        `json:"reagent_id"`
	Reagent   *ReagentResponse `json:"reagent,omitempty"`
	Quantity  float64          `json:"quantity"`
}

// RequestResponse is the API shape of a withdrawal request. Reagent
// snapshots go through ReagentResponse so the minStockLevel mapping
// also holds for embedded reagents.
type RequestResponse struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	User      *model.UserResponse   `json:"user,omitempty"`
	Status    model.RequestStatus   `json:"status"`
	Reason    string                `json:"reason"`
	UsageDate time.Time             `json:"usage_date"`
	Items     []RequestItemResponse `json:"items"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func toRequestResponse(r *model.Request) RequestResponse {
	items := make([]RequestItemResponse, len(r.Items))
	for i := range r.Items {
		item := &r.Items[i]
		items[i] = RequestItemResponse{
			ID:        item.ID,
			ReagentID: item.ReagentID,
			Quantity:  item.Quantity,
		}
		if item.Reagent != nil {
			snapshot := toReagentResponse(item.Reagent)
			items[i].Reagent = &snapshot
		}
	}

	out := RequestResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Status:    r.Status,
		Reason:    r.Reason,
		UsageDate: r.UsageDate,
		Items:     items,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.User != nil {
		user := r.User.ToResponse()
		out.User = &user
	}
	return out
}

func toRequestResponses(requests []model.Request) []RequestResponse {
	out := make([]RequestResponse, len(requests))
	for i := range requests {
		out[i] = toRequestResponse(&requests[i])
	}
	return out
}

// RequestItemBody is one line of a withdrawal request
type RequestItemBody struct {
	ReagentID uuid.UUID `json:"reagentId" validate:"uuid_required"`
	Quantity  float64   `json:"quantity" validate:"required,gt=0"`
}

// CreateRequestBody is the API shape of a new withdrawal request
type CreateRequestBody struct {
	Items     []RequestItemBody `json:"items" validate:"dive"`
	Reason    string            `json:"reason"`
	UsageDate string            `json:"usageDate"`
}

func (b *CreateRequestBody) toInput() service.CreateRequestInput {
	items := make([]service.RequestItemInput, len(b.Items))
	for i, item := range b.Items {
		items[i] = service.RequestItemInput{
			ReagentID: item.ReagentID,
			Quantity:  item.Quantity,
		}
	}
	return service.CreateRequestInput{
		Items:     items,
		Reason:    b.Reason,
		UsageDate: parseDate(b.UsageDate),
	}
}

// UpdateStatusBody carries the requested lifecycle transition
type UpdateStatusBody struct {
	Status string `json:"status" validate:"required"`
}

// ContainerBody is the API shape of a waste container write
type ContainerBody struct {
	Identifier    string  `json:"identifier" validate:"required"`
	Type          string  `json:"type"`
	Capacity      float64 `json:"capacity" validate:"required,gt=0"`
	CurrentVolume float64 `json:"currentVolume" validate:"gte=0"`
	Location      string  `json:"location"`
	IsActive      *bool   `json:"isActive"`
}

func (b *ContainerBody) toModel() *model.WasteContainer {
	active := true
	if b.IsActive != nil {
		active = *b.IsActive
	}
	return &model.WasteContainer{
		Identifier:    b.Identifier,
		Type:          b.Type,
		Capacity:      b.Capacity,
		CurrentVolume: b.CurrentVolume,
		Location:      b.Location,
		IsActive:      active,
	}
}

// WasteLogBody is the API shape of a disposal entry
type WasteLogBody struct {
	Description string    `json:"description" validate:"required"`
	Quantity    float64   `json:"quantity" validate:"required,gt=0"`
	ContainerID uuid.UUID `json:"containerId" validate:"uuid_required"`
}

// CreateUserBody is the API shape of an admin-created account
type CreateUserBody struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN RESEARCHER"`
}

// parseDate accepts YYYY-MM-DD or RFC 3339; anything else yields the
// zero time, which downstream treats as "now".
func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Time{}
}
