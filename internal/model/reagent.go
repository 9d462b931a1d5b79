package model

import "time"

// Reagent is a chemical held in lab stock. Quantity only changes through
// request fulfillment or a direct admin edit and must never go negative.
type Reagent struct {
	BaseModel
	Name           string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category       string    `gorm:"type:varchar(100)" json:"category"`
	Quantity       float64   `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Unit           string    `gorm:"type:varchar(20);not null" json:"unit" validate:"required"`
	MinQuantity    float64   `gorm:"not null;default:0" json:"min_quantity" validate:"gte=0"` // Reorder threshold
	Location       string    `gorm:"type:varchar(255)" json:"location"`
	ExpirationDate time.Time `json:"expiration_date"`
	IsControlled   bool      `gorm:"default:false" json:"is_controlled"`
	CASNumber      string    `gorm:"type:varchar(30);index" json:"cas_number"`
	Formula        string    `gorm:"type:varchar(100)" json:"formula"`
}

// BelowMinimum reports whether stock has fallen under the reorder threshold
func (r *Reagent) BelowMinimum() bool {
	return r.Quantity < r.MinQuantity
}
