package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("duplicate record")
)

// Migrate creates the schema for every persistence model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&equipmentTypeModel{},
		&equipmentModel{},
		&bookingModel{},
		&bookingEquipmentModel{},
		&eventModel{},
		&eventUserModel{},
	)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	// sqlite reports constraint violations as plain errors
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
