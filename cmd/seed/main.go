package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"transroute/internal/locations"
	"transroute/internal/routes"
	"transroute/internal/shared/config"
	"transroute/internal/shared/database"
	"transroute/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting TransRoute Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"booking_passengers",
		"bookings",
		"shipments",
		"routes",
		"locations",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds users, the location catalog and the route matrix
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	locationNames, err := s.SeedLocations()
	if err != nil {
		return fmt.Errorf("failed to seed locations: %w", err)
	}

	if err := s.SeedRoutes(locationNames); err != nil {
		return fmt.Errorf("failed to seed routes: %w", err)
	}

	// Clear Redis so seeded data is not shadowed by stale cache entries
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates one admin and one demo passenger
func (s *Seeder) SeedUsers() error {
	fmt.Println("  👤 Seeding users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"Admin", "Adelas", "admin@transroute.com", users.RoleAdmin},
		{"Maria", "Hernandez", "maria@example.com", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return nil
}

// SeedLocations creates the served towns
func (s *Seeder) SeedLocations() ([]string, error) {
	fmt.Println("  📍 Seeding locations...")

	names := []string{"Orizaba", "Zongolica", "Cuautlamanca", "Zacamilola", "Xoxocotla"}

	for _, name := range names {
		location := locations.Location{
			ID:     uuid.New(),
			Name:   name,
			Active: true,
		}

		if err := s.db.PostgreSQL.Create(&location).Error; err != nil {
			return nil, fmt.Errorf("failed to create location %s: %w", name, err)
		}

		fmt.Printf("    ✅ Created location: %s\n", name)
	}

	return names, nil
}

// SeedRoutes creates scheduled routes between the seeded locations
func (s *Seeder) SeedRoutes(locationNames []string) error {
	fmt.Println("  🚌 Seeding routes...")

	routesData := []struct {
		origin      string
		destination string
		departure   string
		arrival     string
		priceCents  int64
		serviceType routes.ServiceType
	}{
		{"Orizaba", "Zongolica", "06:00", "07:30", 6500, routes.ServiceOrdinario},
		{"Orizaba", "Zongolica", "09:00", "10:15", 8500, routes.ServiceRapido},
		{"Orizaba", "Zongolica", "14:00", "15:00", 11000, routes.ServiceDirecto},
		{"Zongolica", "Orizaba", "07:00", "08:30", 6500, routes.ServiceOrdinario},
		{"Zongolica", "Orizaba", "17:30", "18:45", 8500, routes.ServiceRapido},
		{"Orizaba", "Cuautlamanca", "08:00", "10:30", 9000, routes.ServiceOrdinario},
		{"Cuautlamanca", "Orizaba", "11:30", "14:00", 9000, routes.ServiceOrdinario},
		{"Zongolica", "Zacamilola", "06:30", "07:15", 4500, routes.ServiceOrdinario},
		{"Zacamilola", "Zongolica", "16:00", "16:45", 4500, routes.ServiceOrdinario},
		{"Orizaba", "Xoxocotla", "07:30", "09:45", 9800, routes.ServiceRapido},
		{"Xoxocotla", "Orizaba", "15:00", "17:15", 9800, routes.ServiceRapido},
		{"Cuautlamanca", "Xoxocotla", "10:00", "11:20", 5600, routes.ServiceOrdinario},
		{"Zacamilola", "Xoxocotla", "22:30", "00:15", 7200, routes.ServiceDirecto},
	}

	for _, routeData := range routesData {
		route := routes.Route{
			ID:            uuid.New(),
			Origin:        routeData.origin,
			Destination:   routeData.destination,
			DepartureTime: routeData.departure,
			ArrivalTime:   routeData.arrival,
			PriceCents:    routeData.priceCents,
			ServiceType:   routeData.serviceType,
			Active:        true,
		}

		if err := s.db.PostgreSQL.Create(&route).Error; err != nil {
			return fmt.Errorf("failed to create route %s-%s: %w", routeData.origin, routeData.destination, err)
		}

		fmt.Printf("    ✅ Created route: %s → %s %s (%s)\n",
			route.Origin, route.Destination, route.DepartureTime, route.ServiceType)
	}

	return nil
}
