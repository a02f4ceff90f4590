package booking

import (
	"time"

	"rentaldesk/internal/repository"
)

// Duration is a pointer so a zero duration is distinguishable from an
// absent one; zero and negative values flow through the pricing unchanged.
type CreateBookingRequest struct {
	StartDate    time.Time `json:"startDate" validate:"required"`
	Duration     *float64  `json:"duration" validate:"required"`
	EquipmentIDs []int64   `json:"equipmentIds"`
}

type EquipmentRef struct {
	ID int64 `json:"id"`
}

type UserRef struct {
	Name string `json:"name"`
}

type BookingResponse struct {
	ID         int64          `json:"id"`
	StartDate  time.Time      `json:"startDate"`
	Duration   float64        `json:"duration"`
	TotalPrice float64        `json:"totalPrice"`
	Equipments []EquipmentRef `json:"equipments"`
	User       UserRef        `json:"user"`
}

func toBookingResponse(d repository.BookingDetails) BookingResponse {
	equipments := make([]EquipmentRef, 0, len(d.EquipmentIDs))
	for _, id := range d.EquipmentIDs {
		equipments = append(equipments, EquipmentRef{ID: id})
	}

	return BookingResponse{
		ID:         d.ID,
		StartDate:  d.StartDate,
		Duration:   d.Duration,
		TotalPrice: d.TotalPrice,
		Equipments: equipments,
		User:       UserRef{Name: d.UserName},
	}
}
