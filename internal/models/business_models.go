package models

import (
	"time"

	"github.com/google/uuid"
)

// BusinessType identifies which vertical a business operates in. The value is
// stored as-is in the businesses table.
type BusinessType string

const (
	BusinessTypeRetail  BusinessType = "retail"  // general retail POS
	BusinessTypeGrocery BusinessType = "grocery" // grocery/duka POS
	BusinessTypeRental  BusinessType = "rental"  // property rental (tenants, rent payments)
	BusinessTypeAirbnb  BusinessType = "airbnb"  // short-term rental bookings
	BusinessTypeHotel   BusinessType = "hotel"   // hotel/lodging bookings
	BusinessTypeSchool  BusinessType = "school"  // school fee payments
)

// Business represents a single registered business.
type Business struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	Name         string       `json:"name" db:"name" binding:"required"`
	BusinessType BusinessType `json:"business_type" db:"business_type"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}
