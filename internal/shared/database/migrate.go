package database

import (
	"fmt"
	"log"

	"transroute/internal/booking"
	"transroute/internal/locations"
	"transroute/internal/routes"
	"transroute/internal/shipments"
	"transroute/internal/users"
)

// RunMigrations auto-migrates all domain models
func (db *DB) RunMigrations() error {
	log.Println("Running database migrations...")

	err := db.PostgreSQL.AutoMigrate(
		&users.User{},
		&locations.Location{},
		&routes.Route{},
		&booking.Booking{},
		&booking.Passenger{},
		&shipments.Shipment{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
