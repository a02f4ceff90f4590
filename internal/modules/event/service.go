package event

import (
	"context"
	"errors"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/pkg/validator"
	"rentaldesk/internal/repository"
)

// EventRepository defines the persistence operations on events.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	ListDetails(ctx context.Context) ([]repository.EventDetails, error)
	AddAttendee(ctx context.Context, eventID, userID int64) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	events EventRepository
}

func NewService(events EventRepository) *Service {
	return &Service{events: events}
}

func (s *Service) ListEvents(ctx context.Context) ([]repository.EventDetails, error) {
	return s.events.ListDetails(ctx)
}

func (s *Service) CreateEvent(ctx context.Context, e *domain.Event) error {
	if fieldErrs := validator.Validate(e); fieldErrs != nil {
		return ErrValidation
	}
	return s.events.Create(ctx, e)
}

// JoinEvent links the user to the event; joining twice is rejected by
// the unique pair on event_users.
func (s *Service) JoinEvent(ctx context.Context, eventID, userID int64) error {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.events.AddAttendee(ctx, eventID, userID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyJoined
		}
		return err
	}
	return nil
}

func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
