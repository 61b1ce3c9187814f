package models

import "time"

// ListingType marks a property as offered for rent or for sale
type ListingType string

const (
	ListingTypeRent ListingType = "rent"
	ListingTypeSale ListingType = "sale"
)

// Valid reports whether the listing type is one of the accepted values
func (t ListingType) Valid() bool {
	return t == ListingTypeRent || t == ListingTypeSale
}

// Property represents a real-estate record with its geolocation.
//
// Coordinates are stored in separate longitude and latitude columns.
// Wherever a coordinate pair appears in this codebase the convention is
// longitude first, latitude second; user-facing input arrives as
// {lat, lng} and is converted exactly once, at the handler boundary.
type Property struct {
	ID          uint        `gorm:"primarykey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Address     string      `gorm:"not null" json:"address"`
	Pincode     string      `gorm:"not null" json:"pincode"`
	City        string      `gorm:"not null" json:"city"`
	State       string      `gorm:"not null" json:"state"`
	Longitude   float64     `gorm:"not null;index:idx_properties_location" json:"longitude"`
	Latitude    float64     `gorm:"not null;index:idx_properties_location" json:"latitude"`
	ListingType ListingType `gorm:"not null;index" json:"listing_type"`
	Price       float64     `gorm:"not null" json:"price"`
	SellerID    uint        `gorm:"not null;index" json:"seller_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName overrides the table name
func (Property) TableName() string {
	return "properties"
}

// NearbyProperty is a property annotated with its distance from a query point
type NearbyProperty struct {
	Property
	DistanceMeters float64 `gorm:"-" json:"distance_meters"`
}
