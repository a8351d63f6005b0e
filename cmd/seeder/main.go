// Seeds demo hotels with rooms, menus and a staff login each, for local
// development and load testing. Hotels are seeded concurrently with a
// bounded number of workers.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"guestlink/internal/adapters/observability"
	"guestlink/internal/auth"
	"guestlink/internal/domain"
	"guestlink/internal/shared"
	mysqlrepo "guestlink/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("hotels", cfg.SeedHotels).Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	if err := mysqlrepo.ApplySchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema apply failed")
	}
	log.Info().Msg("schema ok")

	repo := mysqlrepo.New(db)
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for i := 1; i <= cfg.SeedHotels; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			defer sem.Release(1)
			if err := seedHotel(ctx, repo, n); err != nil {
				log.Warn().Int("hotel", n).Err(err).Msg("seed failed")
				return
			}
			log.Info().Int("hotel", n).Msg("seed ok")
		}(i)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

func seedHotel(ctx context.Context, repo *mysqlrepo.Repo, n int) error {
	now := time.Now().UTC().Truncate(time.Second)
	hotel := domain.Hotel{
		ID:      uuid.NewString(),
		Name:    fmt.Sprintf("Demo Hotel %d", n),
		Address: fmt.Sprintf("%d Demo Street", n),
		Phone:   "0000000000",
		Email:   fmt.Sprintf("frontdesk%d@demo.test", n),
		Settings: domain.Settings{
			OrderFoodEnabled:     true,
			RoomServiceEnabled:   true,
			ComplaintEnabled:     true,
			CustomMessageEnabled: true,
			CallServiceEnabled:   true,
			SecurityAlertEnabled: true,
			EmergencyContact:     "security desk: 100",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.CreateHotel(ctx, hotel); err != nil {
		return fmt.Errorf("create hotel: %w", err)
	}

	for _, number := range []string{"101", "102", "103", "201", "202"} {
		room := domain.Room{
			ID:        uuid.NewString(),
			HotelID:   hotel.ID,
			Number:    number,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.CreateRoom(ctx, room); err != nil {
			return fmt.Errorf("create room %s: %w", number, err)
		}
	}

	foods := []domain.FoodItem{
		{Name: "Tea", Category: "beverages", Price: 20},
		{Name: "Coffee", Category: "beverages", Price: 40},
		{Name: "Club Sandwich", Category: "snacks", Price: 180},
	}
	for _, f := range foods {
		f.ID = uuid.NewString()
		f.HotelID = hotel.ID
		f.Available = true
		f.CreatedAt, f.UpdatedAt = now, now
		if err := repo.CreateFood(ctx, f); err != nil {
			return fmt.Errorf("create food %s: %w", f.Name, err)
		}
	}

	services := []domain.ServiceItem{
		{Name: "Fresh Towels", EstimatedTime: "10 min"},
		{Name: "Room Cleaning", EstimatedTime: "30 min"},
	}
	for _, s := range services {
		s.ID = uuid.NewString()
		s.HotelID = hotel.ID
		s.Available = true
		s.CreatedAt, s.UpdatedAt = now, now
		if err := repo.CreateService(ctx, s); err != nil {
			return fmt.Errorf("create service %s: %w", s.Name, err)
		}
	}

	complaints := []domain.ComplaintItem{
		{Name: "AC not working", Category: "maintenance", Severity: domain.PriorityHigh},
		{Name: "Wi-Fi issues", Category: "connectivity", Severity: domain.PriorityMedium},
	}
	for _, c := range complaints {
		c.ID = uuid.NewString()
		c.HotelID = hotel.ID
		c.Available = true
		c.CreatedAt, c.UpdatedAt = now, now
		if err := repo.CreateComplaint(ctx, c); err != nil {
			return fmt.Errorf("create complaint %s: %w", c.Name, err)
		}
	}

	hash, err := auth.HashPassword("demo-password")
	if err != nil {
		return err
	}
	staff := domain.StaffAccount{
		ID:           uuid.NewString(),
		HotelID:      hotel.ID,
		Email:        fmt.Sprintf("admin%d@demo.test", n),
		Name:         "Demo Admin",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
	}
	if err := repo.CreateStaff(ctx, staff); err != nil {
		return fmt.Errorf("create staff: %w", err)
	}
	return nil
}
