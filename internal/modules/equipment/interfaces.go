package equipment

import (
	"context"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/repository"
)

// EquipmentRepository defines the persistence operations on units.
type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	GetDetails(ctx context.Context, id int64) (*repository.EquipmentDetails, error)
	ListDetails(ctx context.Context) ([]repository.EquipmentDetails, error)
	ListDetailsByType(ctx context.Context, typeID int64) ([]repository.EquipmentDetails, error)
	UpdateStateAndHolder(ctx context.Context, id int64, state string, userID *int64) (*domain.Equipment, error)
	FirstAvailableByType(ctx context.Context, typeID int64) (*domain.Equipment, error)
	AssignHolder(ctx context.Context, id int64, userID int64) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// TypeCatalog resolves catalog entries referenced by units.
type TypeCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.EquipmentType, error)
}
