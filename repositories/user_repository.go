package repositories

import (
	"context"

	"gorm.io/gorm"

	"vacation-rentals/domain"
)

// UserRepository is the data access contract for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a gorm-backed UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts user and fills in its ID. A unique-index hit on email
// comes back as ErrDuplicate.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return translate(conn(ctx, r.db).Create(user).Error)
}

// GetByID is the session user loader's lookup.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := conn(ctx, r.db).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetByEmail finds the login candidate.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := conn(ctx, r.db).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&domain.User{}).Where("email = ?", email).Count(&count).Error
	return count, translate(err)
}
