package database

import (
	"fmt"
	"strconv"
)

// KeyAllListings caches the full listings collection
const KeyAllListings = "allListings"

// SellerListingsKey caches the listings of a single seller
func SellerListingsKey(sellerID uint) string {
	return fmt.Sprintf("sellerListings:%d", sellerID)
}

// ListingKey caches a single listing lookup
func ListingKey(id uint) string {
	return fmt.Sprintf("listing:%d", id)
}

// PropertyKey caches a single property lookup
func PropertyKey(id uint) string {
	return fmt.Sprintf("property:%d", id)
}

// NearbyKey caches a geo query. Coordinates and radius are normalized with
// the shortest exact float representation so equivalent queries ("5000" vs
// "5000.0") always map to the same key.
func NearbyKey(lat, lon, radiusMeters float64) string {
	return fmt.Sprintf("nearby:%s:%s:%s", formatCoord(lat), formatCoord(lon), formatCoord(radiusMeters))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
