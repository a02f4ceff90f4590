package repository

import (
	"context"
	"strings"

	"rentaldesk/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64   `gorm:"column:id;primaryKey"`
	Username     string  `gorm:"column:username;uniqueIndex"`
	Name         string  `gorm:"column:name"`
	PhoneNumber  string  `gorm:"column:phonenumber"`
	Address      string  `gorm:"column:address"`
	Password     string  `gorm:"column:password"`
	Points       int     `gorm:"column:points"`
	Rank         int     `gorm:"column:rank"`
	ProfileImage *string `gorm:"column:profile_image"`
	Staff        bool    `gorm:"column:staff"`
	Admin        bool    `gorm:"column:admin"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var image string
	if m.ProfileImage != nil {
		image = *m.ProfileImage
	}

	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Name:         m.Name,
		PhoneNumber:  m.PhoneNumber,
		Address:      m.Address,
		PasswordHash: m.Password,
		Points:       m.Points,
		Rank:         m.Rank,
		ProfileImage: image,
		Staff:        m.Staff,
		Admin:        m.Admin,
	}
}

func toUserModel(u *domain.User) userModel {
	var image *string
	if u.ProfileImage != "" {
		v := u.ProfileImage
		image = &v
	}

	return userModel{
		ID:           u.ID,
		Username:     strings.TrimSpace(u.Username),
		Name:         u.Name,
		PhoneNumber:  u.PhoneNumber,
		Address:      u.Address,
		Password:     u.PasswordHash,
		Points:       u.Points,
		Rank:         u.Rank,
		ProfileImage: image,
		Staff:        u.Staff,
		Admin:        u.Admin,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&m)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}

	out := make([]domain.User, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}
