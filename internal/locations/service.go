package locations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"transroute/internal/shared/constants"
	"transroute/pkg/cache"

	"github.com/google/uuid"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrDuplicateName    = errors.New("location name already exists")
	ErrLocationInUse    = errors.New("location is referenced by active routes")
)

// RouteCounter reports how many active routes reference a location.
// The routes package provides the implementation; the indirection keeps
// the two packages from importing each other.
type RouteCounter interface {
	CountRoutesUsingLocation(ctx context.Context, locationName string) (int64, error)
}

type Service interface {
	Create(ctx context.Context, req *CreateLocationRequest) (*LocationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*LocationResponse, error)
	GetAll(ctx context.Context, includeInactive bool) ([]LocationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateLocationRequest) (*LocationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo       Repository
	cache      cache.Service
	routeGuard RouteCounter
}

func NewService(repo Repository, cacheService cache.Service, routeGuard RouteCounter) Service {
	return &service{
		repo:       repo,
		cache:      cacheService,
		routeGuard: routeGuard,
	}
}

func (s *service) Create(ctx context.Context, req *CreateLocationRequest) (*LocationResponse, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.repo.NameExists(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check location name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateName
	}

	location := &Location{
		Name:   name,
		Active: true,
	}

	if err := s.repo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	s.invalidateCache(ctx)

	resp := toLocationResponse(location)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*LocationResponse, error) {
	var resp LocationResponse
	cacheKey := constants.BuildLocationDetailKey(id.String())

	err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_LOCATION_DETAIL, func() (interface{}, error) {
		location, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return toLocationResponse(location), nil
	}, &resp)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, includeInactive bool) ([]LocationResponse, error) {
	// Admin listings bypass the cache; the public list is what gets hot
	if includeInactive {
		locations, err := s.repo.GetAll(ctx, true)
		if err != nil {
			return nil, err
		}
		return toLocationResponses(locations), nil
	}

	var resp []LocationResponse
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_LOCATIONS_ACTIVE, constants.TTL_LOCATIONS_ACTIVE, func() (interface{}, error) {
		locations, err := s.repo.GetAll(ctx, false)
		if err != nil {
			return nil, err
		}
		return toLocationResponses(locations), nil
	}, &resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *UpdateLocationRequest) (*LocationResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		exists, err := s.repo.NameExists(ctx, name, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check location name: %w", err)
		}
		if exists {
			return nil, ErrDuplicateName
		}
		updates["name"] = name
	}

	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	s.invalidateCache(ctx)

	location, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toLocationResponse(location)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	location, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if s.routeGuard != nil {
		count, err := s.routeGuard.CountRoutesUsingLocation(ctx, location.Name)
		if err != nil {
			return fmt.Errorf("failed to check route references: %w", err)
		}
		if count > 0 {
			return ErrLocationInUse
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_LOCATIONS_ALL); err != nil {
		// Stale entries expire on their own TTL
		fmt.Printf("failed to invalidate location cache: %v\n", err)
	}
}
