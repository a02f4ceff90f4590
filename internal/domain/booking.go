package domain

import "time"

// Booking is a rental contract. TotalPrice is computed once at creation
// from the unit prices in effect at that moment and never recomputed.
type Booking struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"-"`
	StartDate  time.Time `json:"startDate"`
	Duration   float64   `json:"duration"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}
