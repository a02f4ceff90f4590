package repository

import (
	"context"

	"rentaldesk/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID              int64  `gorm:"column:id;primaryKey"`
	EquipmentTypeID int64  `gorm:"column:equipment_type_id;index"`
	UserID          *int64 `gorm:"column:user_id"`
	State           string `gorm:"column:state"`
}

func (equipmentModel) TableName() string { return "equipments" }

func toDomainEquipment(m equipmentModel) *domain.Equipment {
	return &domain.Equipment{
		ID:              m.ID,
		EquipmentTypeID: m.EquipmentTypeID,
		UserID:          m.UserID,
		State:           m.State,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	return equipmentModel{
		ID:              e.ID,
		EquipmentTypeID: e.EquipmentTypeID,
		UserID:          e.UserID,
		State:           e.State,
	}
}

// EquipmentDetails joins a unit with its holder's name and its catalog entry.
type EquipmentDetails struct {
	ID              int64
	EquipmentTypeID int64
	State           string
	HolderName      *string
	TypeName        string
	Category        string
	RentingPrice    float64
	EquipmentImage  string
}

type equipmentDetailsRow struct {
	ID              int64   `gorm:"column:id"`
	EquipmentTypeID int64   `gorm:"column:equipment_type_id"`
	State           string  `gorm:"column:state"`
	HolderName      *string `gorm:"column:holder_name"`
	TypeName        string  `gorm:"column:type_name"`
	Category        string  `gorm:"column:category"`
	RentingPrice    float64 `gorm:"column:renting_price"`
	EquipmentImage  *string `gorm:"column:equipment_image"`
}

func toEquipmentDetails(r equipmentDetailsRow) EquipmentDetails {
	var image string
	if r.EquipmentImage != nil {
		image = *r.EquipmentImage
	}

	return EquipmentDetails{
		ID:              r.ID,
		EquipmentTypeID: r.EquipmentTypeID,
		State:           r.State,
		HolderName:      r.HolderName,
		TypeName:        r.TypeName,
		Category:        r.Category,
		RentingPrice:    r.RentingPrice,
		EquipmentImage:  image,
	}
}

func (r *EquipmentRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("equipments").
		Select(`equipments.id, equipments.equipment_type_id, equipments.state,
			users.name AS holder_name,
			equipment_types.name AS type_name, equipment_types.category,
			equipment_types.renting_price, equipment_types.equipment_image`).
		Joins("JOIN equipment_types ON equipment_types.id = equipments.equipment_type_id").
		Joins("LEFT JOIN users ON users.id = equipments.user_id")
}

func (r *EquipmentRepository) ListDetails(ctx context.Context) ([]EquipmentDetails, error) {
	var rows []equipmentDetailsRow
	tx := r.detailsQuery(ctx).Order("equipments.id").Scan(&rows)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}

	out := make([]EquipmentDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEquipmentDetails(row))
	}
	return out, nil
}

func (r *EquipmentRepository) GetDetails(ctx context.Context, id int64) (*EquipmentDetails, error) {
	var row equipmentDetailsRow
	tx := r.detailsQuery(ctx).Where("equipments.id = ?", id).Scan(&row)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	d := toEquipmentDetails(row)
	return &d, nil
}

func (r *EquipmentRepository) ListDetailsByType(ctx context.Context, typeID int64) ([]EquipmentDetails, error) {
	var rows []equipmentDetailsRow
	tx := r.detailsQuery(ctx).
		Where("equipments.equipment_type_id = ?", typeID).
		Order("equipments.id").
		Scan(&rows)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}

	out := make([]EquipmentDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEquipmentDetails(row))
	}
	return out, nil
}

// GetUnitPrice resolves the renting price of a unit through its catalog entry.
func (r *EquipmentRepository) GetUnitPrice(ctx context.Context, id int64) (float64, error) {
	var price float64
	tx := r.db.WithContext(ctx).
		Table("equipments").
		Select("equipment_types.renting_price").
		Joins("JOIN equipment_types ON equipment_types.id = equipments.equipment_type_id").
		Where("equipments.id = ?", id).
		Scan(&price)
	if tx.Error != nil {
		return 0, translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return price, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	*e = *toDomainEquipment(m)
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return toDomainEquipment(m), nil
}

// UpdateStateAndHolder persists a state/holder change on an existing unit.
func (r *EquipmentRepository) UpdateStateAndHolder(ctx context.Context, id int64, state string, userID *int64) (*domain.Equipment, error) {
	var m equipmentModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}

	if state != "" {
		m.State = state
	}
	m.UserID = userID

	tx := r.db.WithContext(ctx).Model(&equipmentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"state": m.State, "user_id": m.UserID})
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return toDomainEquipment(m), nil
}

// FirstAvailableByType returns the lowest-id unit of the type with no holder.
func (r *EquipmentRepository) FirstAvailableByType(ctx context.Context, typeID int64) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).
		Where("equipment_type_id = ? AND user_id IS NULL", typeID).
		Order("id").
		First(&m)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return toDomainEquipment(m), nil
}

func (r *EquipmentRepository) AssignHolder(ctx context.Context, id int64, userID int64) error {
	tx := r.db.WithContext(ctx).Model(&equipmentModel{}).
		Where("id = ?", id).
		Update("user_id", userID)
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&equipmentModel{}, id)
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&equipmentModel{}).Count(&cnt)
	if tx.Error != nil {
		return 0, translateError(tx.Error)
	}
	return cnt, nil
}
