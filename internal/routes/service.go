package routes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"transroute/internal/shared/constants"
	"transroute/pkg/cache"

	"github.com/google/uuid"
)

var (
	ErrRouteNotFound      = errors.New("route not found")
	ErrSameOriginAndDest  = errors.New("origin and destination must differ")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidTimeFormat  = errors.New("times must be in HH:MM format")
	ErrInvalidPrice       = errors.New("price must be greater than zero")
)

type Service interface {
	Create(ctx context.Context, req *CreateRouteRequest) (*RouteResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RouteResponse, error)
	GetAll(ctx context.Context, includeInactive bool) ([]RouteResponse, error)
	Search(ctx context.Context, origin, destination string) ([]RouteResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRouteRequest) (*RouteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// CountRoutesUsingLocation backs the locations delete guard
	CountRoutesUsingLocation(ctx context.Context, locationName string) (int64, error)
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
	}
}

func (s *service) Create(ctx context.Context, req *CreateRouteRequest) (*RouteResponse, error) {
	if err := validateRouteFields(req.Origin, req.Destination, req.DepartureTime, req.ArrivalTime, req.ServiceType, req.PriceCents); err != nil {
		return nil, err
	}

	route := &Route{
		Origin:        strings.TrimSpace(req.Origin),
		Destination:   strings.TrimSpace(req.Destination),
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		PriceCents:    req.PriceCents,
		ServiceType:   ServiceType(req.ServiceType),
		Active:        true,
	}

	if err := s.repo.Create(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	s.invalidateCache(ctx)

	resp := ToRouteResponse(route)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*RouteResponse, error) {
	var resp RouteResponse
	cacheKey := constants.BuildRouteDetailKey(id.String())

	err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_ROUTE_DETAIL, func() (interface{}, error) {
		route, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return ToRouteResponse(route), nil
	}, &resp)
	if err != nil {
		if errors.Is(err, ErrRouteNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}

	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, includeInactive bool) ([]RouteResponse, error) {
	if includeInactive {
		routes, err := s.repo.GetAll(ctx, true)
		if err != nil {
			return nil, err
		}
		return toRouteResponses(routes), nil
	}

	var resp []RouteResponse
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_ROUTES_ACTIVE, constants.TTL_ROUTES_ACTIVE, func() (interface{}, error) {
		routes, err := s.repo.GetAll(ctx, false)
		if err != nil {
			return nil, err
		}
		return toRouteResponses(routes), nil
	}, &resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *service) Search(ctx context.Context, origin, destination string) ([]RouteResponse, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return []RouteResponse{}, nil
	}

	var resp []RouteResponse
	cacheKey := constants.BuildRouteSearchKey(origin, destination)

	err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_ROUTE_SEARCH, func() (interface{}, error) {
		routes, err := s.repo.Search(ctx, origin, destination)
		if err != nil {
			return nil, err
		}
		return toRouteResponses(routes), nil
	}, &resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *UpdateRouteRequest) (*RouteResponse, error) {
	route, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	origin := route.Origin
	destination := route.Destination

	if req.Origin != nil {
		origin = strings.TrimSpace(*req.Origin)
		updates["origin"] = origin
	}
	if req.Destination != nil {
		destination = strings.TrimSpace(*req.Destination)
		updates["destination"] = destination
	}
	if strings.EqualFold(origin, destination) {
		return nil, ErrSameOriginAndDest
	}

	if req.DepartureTime != nil {
		if !isValidClockTime(*req.DepartureTime) {
			return nil, ErrInvalidTimeFormat
		}
		updates["departure_time"] = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		if !isValidClockTime(*req.ArrivalTime) {
			return nil, ErrInvalidTimeFormat
		}
		updates["arrival_time"] = *req.ArrivalTime
	}
	if req.PriceCents != nil {
		if *req.PriceCents <= 0 {
			return nil, ErrInvalidPrice
		}
		updates["price_cents"] = *req.PriceCents
	}
	if req.ServiceType != nil {
		if !IsValidServiceType(*req.ServiceType) {
			return nil, ErrInvalidServiceType
		}
		updates["service_type"] = *req.ServiceType
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

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToRouteResponse(updated)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) CountRoutesUsingLocation(ctx context.Context, locationName string) (int64, error) {
	return s.repo.CountByLocation(ctx, locationName)
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ROUTES_ALL); err != nil {
		fmt.Printf("failed to invalidate route cache: %v\n", err)
	}
}

func validateRouteFields(origin, destination, departure, arrival, serviceType string, priceCents int64) error {
	if strings.EqualFold(strings.TrimSpace(origin), strings.TrimSpace(destination)) {
		return ErrSameOriginAndDest
	}
	if !isValidClockTime(departure) || !isValidClockTime(arrival) {
		return ErrInvalidTimeFormat
	}
	if priceCents <= 0 {
		return ErrInvalidPrice
	}
	if !IsValidServiceType(serviceType) {
		return ErrInvalidServiceType
	}
	return nil
}

func isValidClockTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}
