// Package userrepo persists account aggregates.
package userrepo

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// UserDTO represents the database structure for persisting accounts.
type UserDTO struct {
	Username     string `gorm:"primaryKey"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
}

// TableName overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new account. A username collision is classified as invalid input.
func (r *GormUserRepository) Add(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := UserDTO{
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		IsAdmin:      u.IsAdmin(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("username", err)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("username", err)
		}
		return err
	}

	return nil
}

// GetByUsername loads an account by its primary key.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}

	return user.RestoreUser(dto.Username, dto.PasswordHash, dto.IsAdmin)
}
