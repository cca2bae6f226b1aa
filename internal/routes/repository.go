package routes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, route *Route) error
	GetByID(ctx context.Context, id uuid.UUID) (*Route, error)
	GetAll(ctx context.Context, includeInactive bool) ([]Route, error)
	Search(ctx context.Context, origin, destination string) ([]Route, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByLocation(ctx context.Context, locationName string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, route *Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Route, error) {
	var route Route
	err := r.db.WithContext(ctx).First(&route, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return &route, nil
}

func (r *repository) GetAll(ctx context.Context, includeInactive bool) ([]Route, error) {
	var routes []Route
	query := r.db.WithContext(ctx).Order("origin ASC, departure_time ASC")
	if !includeInactive {
		query = query.Where("active = true")
	}
	if err := query.Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// Search matches origin and destination case-insensitively. Both terms
// are required; an empty term matches nothing, not everything.
func (r *repository) Search(ctx context.Context, origin, destination string) ([]Route, error) {
	var routes []Route
	err := r.db.WithContext(ctx).
		Where("active = true").
		Where("origin ILIKE ?", strings.TrimSpace(origin)).
		Where("destination ILIKE ?", strings.TrimSpace(destination)).
		Order("departure_time ASC").
		Find(&routes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search routes: %w", err)
	}
	return routes, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Route{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRouteNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Route{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRouteNotFound
	}
	return nil
}

func (r *repository) CountByLocation(ctx context.Context, locationName string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Route{}).
		Where("origin ILIKE ? OR destination ILIKE ?", locationName, locationName).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
