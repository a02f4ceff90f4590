package repository

import (
	"context"

	"rentaldesk/internal/domain"

	"gorm.io/gorm"
)

type EquipmentTypeRepository struct {
	db *gorm.DB
}

func NewEquipmentTypeRepository(db *gorm.DB) *EquipmentTypeRepository {
	return &EquipmentTypeRepository{db: db}
}

type equipmentTypeModel struct {
	ID             int64   `gorm:"column:id;primaryKey"`
	Name           string  `gorm:"column:name"`
	Category       string  `gorm:"column:category"`
	RentingPrice   float64 `gorm:"column:renting_price"`
	EquipmentImage *string `gorm:"column:equipment_image"`
}

func (equipmentTypeModel) TableName() string { return "equipment_types" }

func toDomainEquipmentType(m equipmentTypeModel) *domain.EquipmentType {
	var image string
	if m.EquipmentImage != nil {
		image = *m.EquipmentImage
	}

	return &domain.EquipmentType{
		ID:             m.ID,
		Name:           m.Name,
		Category:       m.Category,
		RentingPrice:   m.RentingPrice,
		EquipmentImage: image,
	}
}

func toEquipmentTypeModel(t *domain.EquipmentType) equipmentTypeModel {
	var image *string
	if t.EquipmentImage != "" {
		v := t.EquipmentImage
		image = &v
	}

	return equipmentTypeModel{
		ID:             t.ID,
		Name:           t.Name,
		Category:       t.Category,
		RentingPrice:   t.RentingPrice,
		EquipmentImage: image,
	}
}

func (r *EquipmentTypeRepository) Create(ctx context.Context, t *domain.EquipmentType) error {
	m := toEquipmentTypeModel(t)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	*t = *toDomainEquipmentType(m)
	return nil
}

func (r *EquipmentTypeRepository) GetByID(ctx context.Context, id int64) (*domain.EquipmentType, error) {
	var m equipmentTypeModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return toDomainEquipmentType(m), nil
}

func (r *EquipmentTypeRepository) List(ctx context.Context) ([]domain.EquipmentType, error) {
	var models []equipmentTypeModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}

	out := make([]domain.EquipmentType, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainEquipmentType(m))
	}
	return out, nil
}
