package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"vacation-rentals/domain"
	"vacation-rentals/dto"
	"vacation-rentals/publishers"
	"vacation-rentals/repositories"
	"vacation-rentals/utils"
)

// PropertyService lists and creates vacation properties.
type PropertyService interface {
	List(ctx context.Context) ([]domain.VacationProperty, error)
	Create(ctx context.Context, hostID uint, form dto.PropertyForm) (*domain.VacationProperty, error)
}

type propertyService struct {
	properties repositories.PropertyRepository
	users      repositories.UserRepository
	cache      repositories.CacheRepository
	tx         repositories.Transactor
	publisher  publishers.PropertyEventPublisher
}

func NewPropertyService(
	properties repositories.PropertyRepository,
	users repositories.UserRepository,
	cache repositories.CacheRepository,
	tx repositories.Transactor,
	publisher publishers.PropertyEventPublisher,
) PropertyService {
	return &propertyService{
		properties: properties,
		users:      users,
		cache:      cache,
		tx:         tx,
		publisher:  publisher,
	}
}

// List returns every property, reading through the listing cache. The
// cache generation is taken before the query so a create that commits
// in between invalidates the rows read here.
func (s *propertyService) List(ctx context.Context) ([]domain.VacationProperty, error) {
	if cached, ok := s.cache.Get(repositories.ListingCacheKey); ok {
		return cached, nil
	}

	gen, cacheable := s.cache.Generation(repositories.ListingCacheKey)

	properties, err := s.properties.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	if cacheable {
		s.cache.Set(repositories.ListingCacheKey, gen, properties)
	}
	return properties, nil
}

// Create stores a listing owned by hostID. The host is resolved inside
// the same transaction as the insert. After commit the listing cache is
// invalidated and a create event is published; publish errors are only
// logged.
func (s *propertyService) Create(ctx context.Context, hostID uint, form dto.PropertyForm) (*domain.VacationProperty, error) {
	var property *domain.VacationProperty

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		host, err := s.users.GetByID(ctx, hostID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("load host: %w", err)
		}

		property = &domain.VacationProperty{
			Description: strings.TrimSpace(form.Description),
			ImageURL:    strings.TrimSpace(form.ImageURL),
			HostID:      host.ID,
			Host:        host,
		}
		if err := s.properties.Create(ctx, property); err != nil {
			return fmt.Errorf("create property: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(repositories.ListingCacheKey)

	if err := s.publisher.PublishPropertyCreated(ctx, property); err != nil {
		utils.Logger.WithFields(logrus.Fields{
			"property_id": property.ID,
			"error":       err,
		}).Warn("Failed to publish property created event")
	}

	return property, nil
}
