package shipments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"transroute/internal/notifications"
	"transroute/internal/shared/constants"
	"transroute/pkg/cache"
	"transroute/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrShipmentNotFound      = errors.New("shipment not found")
	ErrInvalidWeight         = errors.New("parcel weight must be between 0 and 50 kg")
	ErrInvalidShipDate       = errors.New("ship date must be a valid date")
	ErrSameOriginAndDest     = errors.New("origin and destination must differ")
	ErrInvalidTrackingNumber = errors.New("tracking number has an invalid format")
)

// MaxParcelWeightKg bounds what fits in a bus cargo hold.
const MaxParcelWeightKg = 50.0

type Service interface {
	Register(ctx context.Context, userID uuid.UUID, req *CreateShipmentRequest) (*ShipmentResponse, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*ShipmentResponse, error)
	Track(ctx context.Context, trackingNumber string) (*TrackingStatus, error)
	GetUserShipments(ctx context.Context, userID uuid.UUID) ([]ShipmentResponse, error)
}

type service struct {
	repo     Repository
	tracker  TrackingProvider
	cache    cache.Service
	notifier notifications.Service
	log      *logger.Logger
}

func NewService(repo Repository, tracker TrackingProvider, cacheService cache.Service, notifier notifications.Service, log *logger.Logger) Service {
	return &service{
		repo:     repo,
		tracker:  tracker,
		cache:    cacheService,
		notifier: notifier,
		log:      log,
	}
}

func (s *service) Register(ctx context.Context, userID uuid.UUID, req *CreateShipmentRequest) (*ShipmentResponse, error) {
	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if strings.EqualFold(origin, destination) {
		return nil, ErrSameOriginAndDest
	}
	if req.WeightKg <= 0 || req.WeightKg > MaxParcelWeightKg {
		return nil, ErrInvalidWeight
	}

	shipDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidShipDate
	}

	shipment := &Shipment{
		TrackingNumber:    GenerateTrackingNumber(),
		UserID:            userID,
		Origin:            origin,
		Destination:       destination,
		ShipDate:          shipDate.Format(dateLayout),
		EstimatedDelivery: EstimatedDelivery(shipDate).Format(dateLayout),
		WeightKg:          req.WeightKg,
		PriceCents:        GuidePrice(req.WeightKg),
		SenderName:        strings.TrimSpace(req.Sender.Name),
		SenderPhone:       strings.TrimSpace(req.Sender.Phone),
		SenderEmail:       strings.TrimSpace(req.Sender.Email),
		RecipientName:     strings.TrimSpace(req.Recipient.Name),
		RecipientPhone:    strings.TrimSpace(req.Recipient.Phone),
		RecipientEmail:    strings.TrimSpace(req.Recipient.Email),
	}

	if err := s.repo.Create(ctx, shipment); err != nil {
		return nil, fmt.Errorf("failed to create shipment: %w", err)
	}

	s.log.LogShipmentRegistered(ctx, shipment.TrackingNumber, userID.String())
	s.notifyRegistered(ctx, shipment)

	resp := toShipmentResponse(shipment)
	return &resp, nil
}

func (s *service) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*ShipmentResponse, error) {
	if !IsValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	shipment, err := s.getShipment(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	resp := toShipmentResponse(shipment)
	return &resp, nil
}

func (s *service) Track(ctx context.Context, trackingNumber string) (*TrackingStatus, error) {
	if !IsValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	shipment, err := s.getShipment(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	status, err := s.tracker.Track(ctx, shipment)
	if err != nil {
		return nil, fmt.Errorf("failed to track shipment %s: %w", trackingNumber, err)
	}
	return status, nil
}

func (s *service) GetUserShipments(ctx context.Context, userID uuid.UUID) ([]ShipmentResponse, error) {
	shipments, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]ShipmentResponse, 0, len(shipments))
	for i := range shipments {
		responses = append(responses, toShipmentResponse(&shipments[i]))
	}
	return responses, nil
}

// getShipment serves guide lookups cache-first; guides never change
// after registration so a short TTL is plenty.
func (s *service) getShipment(ctx context.Context, trackingNumber string) (*Shipment, error) {
	var shipment Shipment
	cacheKey := constants.BuildShipmentTrackingKey(trackingNumber)

	err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_SHIPMENT_TRACKING, func() (interface{}, error) {
		return s.repo.GetByTrackingNumber(ctx, trackingNumber)
	}, &shipment)
	if err != nil {
		if errors.Is(err, ErrShipmentNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("failed to get shipment %s: %w", trackingNumber, err)
	}
	return &shipment, nil
}

func (s *service) notifyRegistered(ctx context.Context, shipment *Shipment) {
	err := s.notifier.SendShipmentRegistered(ctx,
		shipment.UserID.String(),
		shipment.SenderEmail,
		shipment.SenderName,
		map[string]interface{}{
			"TrackingNumber":    shipment.TrackingNumber,
			"Origin":            shipment.Origin,
			"Destination":       shipment.Destination,
			"WeightKg":          shipment.WeightKg,
			"Price":             shipment.Price(),
			"EstimatedDelivery": shipment.EstimatedDelivery,
		})
	if err != nil {
		s.log.ErrorWithContext(ctx, "Failed to queue shipment notification", err,
			map[string]interface{}{"tracking_number": shipment.TrackingNumber})
	}
}
