package shipments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, shipment *Shipment) error
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*Shipment, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Shipment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, shipment *Shipment) error {
	return r.db.WithContext(ctx).Create(shipment).Error
}

func (r *repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*Shipment, error) {
	var shipment Shipment
	err := r.db.WithContext(ctx).First(&shipment, "tracking_number = ?", trackingNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, err
	}
	return &shipment, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]Shipment, error) {
	var shipments []Shipment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&shipments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	return shipments, nil
}
