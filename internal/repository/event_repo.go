package repository

import (
	"context"
	"time"

	"rentaldesk/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

type eventModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Date        time.Time `gorm:"column:date"`
}

func (eventModel) TableName() string { return "events" }

type eventUserModel struct {
	ID      int64 `gorm:"column:id;primaryKey"`
	UserID  int64 `gorm:"column:user_id;uniqueIndex:idx_event_user"`
	EventID int64 `gorm:"column:event_id;uniqueIndex:idx_event_user"`
}

func (eventUserModel) TableName() string { return "event_users" }

func toDomainEvent(m eventModel) *domain.Event {
	return &domain.Event{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Date:        m.Date,
	}
}

// EventDetails pairs an event with the users who joined it.
type EventDetails struct {
	Event     domain.Event
	Attendees []domain.EventAttendee
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := eventModel{Name: e.Name, Description: e.Description, Date: e.Date}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	*e = *toDomainEvent(m)
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var m eventModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return toDomainEvent(m), nil
}

func (r *EventRepository) ListDetails(ctx context.Context) ([]EventDetails, error) {
	var models []eventModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, translateError(err)
	}

	type attendeeRow struct {
		EventID int64  `gorm:"column:event_id"`
		UserID  int64  `gorm:"column:user_id"`
		Name    string `gorm:"column:name"`
	}
	var rows []attendeeRow
	tx := r.db.WithContext(ctx).
		Table("event_users").
		Select("event_users.event_id, event_users.user_id, users.name").
		Joins("JOIN users ON users.id = event_users.user_id").
		Order("event_users.user_id").
		Scan(&rows)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}

	byEvent := make(map[int64][]domain.EventAttendee, len(models))
	for _, row := range rows {
		byEvent[row.EventID] = append(byEvent[row.EventID], domain.EventAttendee{
			ID:   row.UserID,
			Name: row.Name,
		})
	}

	out := make([]EventDetails, 0, len(models))
	for _, m := range models {
		attendees := byEvent[m.ID]
		if attendees == nil {
			attendees = make([]domain.EventAttendee, 0)
		}
		out = append(out, EventDetails{Event: *toDomainEvent(m), Attendees: attendees})
	}
	return out, nil
}

// AddAttendee inserts an event_users row. ErrDuplicate when already joined.
func (r *EventRepository) AddAttendee(ctx context.Context, eventID, userID int64) error {
	link := eventUserModel{EventID: eventID, UserID: userID}
	return translateError(r.db.WithContext(ctx).Create(&link).Error)
}

// Delete removes the event and cascades its attendee rows.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&eventModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("event_id = ?", id).Delete(&eventUserModel{}).Error
	})
	return translateError(err)
}
