package repository

import (
	"context"
	"time"

	"rentaldesk/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	UserID     int64     `gorm:"column:user_id"`
	StartDate  time.Time `gorm:"column:start_date"`
	Duration   float64   `gorm:"column:duration"`
	TotalPrice float64   `gorm:"column:total_price"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// bookingEquipmentModel is the explicit join row between a booking and a
// unit. The pair is unique so one booking cannot link the same unit twice.
type bookingEquipmentModel struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	BookingID   int64 `gorm:"column:booking_id;uniqueIndex:idx_booking_equipment"`
	EquipmentID int64 `gorm:"column:equipment_id;uniqueIndex:idx_booking_equipment"`
}

func (bookingEquipmentModel) TableName() string { return "booking_equipments" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:         m.ID,
		UserID:     m.UserID,
		StartDate:  m.StartDate,
		Duration:   m.Duration,
		TotalPrice: m.TotalPrice,
		CreatedAt:  m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:         b.ID,
		UserID:     b.UserID,
		StartDate:  b.StartDate,
		Duration:   b.Duration,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}

// BookingDetails is the serialization projection: linked equipment by id
// only, owner by name only, no raw foreign key.
type BookingDetails struct {
	ID           int64
	StartDate    time.Time
	Duration     float64
	TotalPrice   float64
	UserName     string
	EquipmentIDs []int64
}

type bookingDetailsRow struct {
	ID         int64     `gorm:"column:id"`
	StartDate  time.Time `gorm:"column:start_date"`
	Duration   float64   `gorm:"column:duration"`
	TotalPrice float64   `gorm:"column:total_price"`
	UserName   string    `gorm:"column:user_name"`
}

// Create inserts the booking and its equipment links in one transaction,
// so a failed link never leaves an unlinked booking behind.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, equipmentIDs []int64) error {
	m := toBookingModel(b)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, equipmentID := range equipmentIDs {
			link := bookingEquipmentModel{BookingID: m.ID, EquipmentID: equipmentID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translateError(err)
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id, bookings.start_date, bookings.duration,
			bookings.total_price, users.name AS user_name`).
		Joins("JOIN users ON users.id = bookings.user_id")
}

func (r *BookingRepository) equipmentIDs(ctx context.Context, bookingID int64) ([]int64, error) {
	ids := make([]int64, 0)
	tx := r.db.WithContext(ctx).
		Model(&bookingEquipmentModel{}).
		Where("booking_id = ?", bookingID).
		Order("equipment_id").
		Pluck("equipment_id", &ids)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return ids, nil
}

func (r *BookingRepository) GetDetails(ctx context.Context, id int64) (*BookingDetails, error) {
	var row bookingDetailsRow
	tx := r.detailsQuery(ctx).Where("bookings.id = ?", id).Scan(&row)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	ids, err := r.equipmentIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return &BookingDetails{
		ID:           row.ID,
		StartDate:    row.StartDate,
		Duration:     row.Duration,
		TotalPrice:   row.TotalPrice,
		UserName:     row.UserName,
		EquipmentIDs: ids,
	}, nil
}

func (r *BookingRepository) ListDetails(ctx context.Context) ([]BookingDetails, error) {
	var rows []bookingDetailsRow
	tx := r.detailsQuery(ctx).Order("bookings.id").Scan(&rows)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}

	var links []bookingEquipmentModel
	if err := r.db.WithContext(ctx).Order("equipment_id").Find(&links).Error; err != nil {
		return nil, translateError(err)
	}
	byBooking := make(map[int64][]int64, len(rows))
	for _, l := range links {
		byBooking[l.BookingID] = append(byBooking[l.BookingID], l.EquipmentID)
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, row := range rows {
		ids := byBooking[row.ID]
		if ids == nil {
			ids = make([]int64, 0)
		}
		out = append(out, BookingDetails{
			ID:           row.ID,
			StartDate:    row.StartDate,
			Duration:     row.Duration,
			TotalPrice:   row.TotalPrice,
			UserName:     row.UserName,
			EquipmentIDs: ids,
		})
	}
	return out, nil
}

// Delete removes the booking and cascades its join rows.
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&bookingModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("booking_id = ?", id).Delete(&bookingEquipmentModel{}).Error
	})
	return translateError(err)
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&cnt)
	if tx.Error != nil {
		return 0, translateError(tx.Error)
	}
	return cnt, nil
}
