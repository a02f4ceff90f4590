package booking

import (
	"context"
	"errors"
	"time"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/pkg/validator"
	"rentaldesk/internal/repository"
)

type Service struct {
	bookings BookingRepository
	catalog  EquipmentCatalog
}

func NewService(bookings BookingRepository, catalog EquipmentCatalog) *Service {
	return &Service{
		bookings: bookings,
		catalog:  catalog,
	}
}

// ComputeTotal sums unit price x duration over the requested equipment.
// Duplicates are priced independently; an empty list yields 0. Any
// unresolvable id fails the whole computation before anything persists.
func (s *Service) ComputeTotal(ctx context.Context, equipmentIDs []int64, duration float64) (float64, error) {
	var total float64
	for _, equipmentID := range equipmentIDs {
		price, err := s.catalog.GetUnitPrice(ctx, equipmentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return 0, ErrEquipmentNotFound
			}
			return 0, err
		}
		total += price * duration
	}
	return total, nil
}

// CreateBooking fixes the total price at creation time, then persists the
// booking together with its equipment links in one transaction.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*repository.BookingDetails, error) {
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		return nil, ErrValidation
	}

	total, err := s.ComputeTotal(ctx, req.EquipmentIDs, *req.Duration)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		UserID:     userID,
		StartDate:  req.StartDate,
		Duration:   *req.Duration,
		TotalPrice: total,
		CreatedAt:  time.Now(),
	}

	// the join table holds one row per unit, so repeated ids collapse
	if err := s.bookings.Create(ctx, b, dedupe(req.EquipmentIDs)); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrValidation
		}
		return nil, err
	}

	return s.bookings.GetDetails(ctx, b.ID)
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*repository.BookingDetails, error) {
	d, err := s.bookings.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]repository.BookingDetails, error) {
	return s.bookings.ListDetails(ctx)
}

func (s *Service) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
