package models

import "time"

// Availability tracks the sale state of a listing
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityPending   Availability = "pending"
	AvailabilitySold      Availability = "sold"
)

// Valid reports whether the availability is one of the accepted values
func (a Availability) Valid() bool {
	return a == AvailabilityAvailable || a == AvailabilityPending || a == AvailabilitySold
}

// Listing links a property to the seller offering it. Its price is the
// asking price of the listing, independent of the property's own price.
type Listing struct {
	ID           uint         `gorm:"primarykey" json:"id"`
	PropertyID   uint         `gorm:"not null;index" json:"property_id"`
	SellerID     uint         `gorm:"not null;index" json:"seller_id"`
	Price        float64      `gorm:"not null" json:"price"`
	Availability Availability `gorm:"not null;default:available" json:"availability"`
	CreatedAt    time.Time    `json:"created_at"`

	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"property,omitempty"`
}

// TableName overrides the table name
func (Listing) TableName() string {
	return "listings"
}
