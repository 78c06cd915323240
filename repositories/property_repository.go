package repositories

import (
	"context"

	"gorm.io/gorm"

	"vacation-rentals/domain"
)

// PropertyRepository is the data access contract for vacation properties.
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.VacationProperty) error
	GetAll(ctx context.Context) ([]domain.VacationProperty, error)
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.VacationProperty) error {
	return translate(conn(ctx, r.db).Omit("Host").Create(property).Error)
}

// GetAll returns every listing with its host, oldest first. No paging.
func (r *propertyRepository) GetAll(ctx context.Context) ([]domain.VacationProperty, error) {
	var properties []domain.VacationProperty
	err := conn(ctx, r.db).Preload("Host").Order("id ASC").Find(&properties).Error
	return properties, translate(err)
}
