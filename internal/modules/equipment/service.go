package equipment

import (
	"context"
	"errors"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/pkg/validator"
	"rentaldesk/internal/repository"
)

type Service struct {
	equipment EquipmentRepository
	types     TypeCatalog
}

func NewService(equipment EquipmentRepository, types TypeCatalog) *Service {
	return &Service{
		equipment: equipment,
		types:     types,
	}
}

func (s *Service) ListEquipments(ctx context.Context) ([]repository.EquipmentDetails, error) {
	return s.equipment.ListDetails(ctx)
}

func (s *Service) GetEquipment(ctx context.Context, id int64) (*repository.EquipmentDetails, error) {
	d, err := s.equipment.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) ListByType(ctx context.Context, typeID int64) ([]repository.EquipmentDetails, error) {
	details, err := s.equipment.ListDetailsByType(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNotFound
	}
	return details, nil
}

func (s *Service) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*repository.EquipmentDetails, error) {
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		return nil, ErrValidation
	}

	if _, err := s.types.GetByID(ctx, req.EquipmentTypeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}

	e := &domain.Equipment{
		EquipmentTypeID: req.EquipmentTypeID,
		State:           req.State,
	}
	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}

	return s.equipment.GetDetails(ctx, e.ID)
}

// UpdateProfile changes a unit's condition and holder. An empty state
// keeps the stored one; a nil user id releases the unit.
func (s *Service) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*domain.Equipment, error) {
	e, err := s.equipment.UpdateStateAndHolder(ctx, id, req.State, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// RentBack hands the first available unit of the given type to the user.
func (s *Service) RentBack(ctx context.Context, req RentBackRequest) (*domain.Equipment, error) {
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		return nil, ErrValidation
	}

	e, err := s.equipment.FirstAvailableByType(ctx, req.EquipmentTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoneAvailable
		}
		return nil, err
	}

	if err := s.equipment.AssignHolder(ctx, e.ID, req.UserID); err != nil {
		return nil, err
	}
	e.UserID = &req.UserID
	return e, nil
}

// DeleteEquipment rejects the delete while a user still holds the unit.
func (s *Service) DeleteEquipment(ctx context.Context, id int64) error {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if e.UserID != nil {
		return ErrHeld
	}

	if err := s.equipment.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) CountEquipments(ctx context.Context) (int64, error) {
	return s.equipment.Count(ctx)
}
