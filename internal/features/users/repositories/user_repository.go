package users_repositories

import (
	"context"
	"errors"
	"time"

	users_models "teamcamp/internal/features/users/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByID returns nil without error when no row exists.
func (r *UserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *users_models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *users_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
