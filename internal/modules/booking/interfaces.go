package booking

import (
	"context"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/repository"
)

// BookingRepository defines the persistence operations of the workflow.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking, equipmentIDs []int64) error
	GetDetails(ctx context.Context, id int64) (*repository.BookingDetails, error)
	ListDetails(ctx context.Context) ([]repository.BookingDetails, error)
	Delete(ctx context.Context, id int64) error
}

// EquipmentCatalog resolves a unit's renting price through its type.
type EquipmentCatalog interface {
	GetUnitPrice(ctx context.Context, equipmentID int64) (float64, error)
}
