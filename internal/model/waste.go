package model

import (
	"time"

	"github.com/google/uuid"
)

// WasteContainer holds disposed material. Invariant:
// 0 <= CurrentVolume <= Capacity.
type WasteContainer struct {
	BaseModel
	Identifier    string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"identifier" validate:"required"`
	Type          string  `gorm:"type:varchar(100)" json:"type"`
	Capacity      float64 `gorm:"not null" json:"capacity" validate:"required,gt=0"`
	CurrentVolume float64 `gorm:"not null;default:0" json:"current_volume" validate:"gte=0"`
	Location      string  `gorm:"type:varchar(255)" json:"location"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`
}

// RemainingCapacity returns the volume the container can still take
func (c *WasteContainer) RemainingCapacity() float64 {
	return c.Capacity - c.CurrentVolume
}

// WasteLog is an immutable disposal audit record. Creating one is
// coupled atomically to incrementing the parent container's volume.
type WasteLog struct {
	BaseModel
	Description string          `gorm:"type:text;not null" json:"description" validate:"required"`
	Quantity    float64         `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Date        time.Time       `json:"date"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ContainerID uuid.UUID       `gorm:"type:uuid;not null;index" json:"container_id" validate:"uuid_required"`
	Container   *WasteContainer `gorm:"foreignKey:ContainerID" json:"container,omitempty"`
}
