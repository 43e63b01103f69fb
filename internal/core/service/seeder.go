package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// Seeder populates an empty database with a working data set: two accounts,
// three clients, three yachts, and three reservations spanning the status
// values. Each stage runs only when its collection is empty, so re-running
// the seeder against a populated database is a no-op and partial failures can
// be retried safely.
type Seeder struct {
	users        *UserService
	clients      *ClientService
	yachts       *YachtService
	reservations *ReservationService

	userRepo        ports.UserRepository
	clientRepo      ports.ClientRepository
	yachtRepo       ports.YachtRepository
	reservationRepo ports.ReservationRepository

	log zerolog.Logger
}

func NewSeeder(
	users *UserService,
	clients *ClientService,
	yachts *YachtService,
	reservations *ReservationService,
	userRepo ports.UserRepository,
	clientRepo ports.ClientRepository,
	yachtRepo ports.YachtRepository,
	reservationRepo ports.ReservationRepository,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{
		users:           users,
		clients:         clients,
		yachts:          yachts,
		reservations:    reservations,
		userRepo:        userRepo,
		clientRepo:      clientRepo,
		yachtRepo:       yachtRepo,
		reservationRepo: reservationRepo,
		log:             log,
	}
}

// Run executes the four seeding stages in order, failing fast on the first
// error. Reservations go through the reservation service so the seeded
// totals come out of the same pricing path as live bookings.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	if err := s.seedClients(ctx); err != nil {
		return err
	}
	if err := s.seedYachts(ctx); err != nil {
		return err
	}
	return s.seedReservations(ctx)
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	existing, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	inputs := []ports.CreateUserInput{
		{Username: "admin", Email: "admin@marinacaribe.com", Password: "admin123", Role: domain.RoleAdmin, Actor: "seeder"},
		{Username: "employee1", Email: "employee1@marinacaribe.com", Password: "emp123", Role: domain.RoleEmployee, Actor: "seeder"},
	}
	for _, in := range inputs {
		if _, err := s.users.Create(ctx, in); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(inputs)).Msg("seeded users")
	return nil
}

func (s *Seeder) seedClients(ctx context.Context) error {
	existing, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	inputs := []ports.CreateClientInput{
		{
			Email:         "carlos.mendoza@example.com",
			Cedula:        "1102345678",
			Phone:         "+593991234567",
			FirstNames:    "Carlos Alberto",
			LastNames:     "Mendoza Rivas",
			LicenseNumber: "NAV-2019-0451",
		},
		{
			Email:      "maria.santos@example.com",
			Cedula:     "0923456789",
			Phone:      "+593987654321",
			FirstNames: "Maria Fernanda",
			LastNames:  "Santos Vera",
		},
		{
			Email:         "jorge.paredes@example.com",
			Cedula:        "1756789012",
			Phone:         "+593998877665",
			FirstNames:    "Jorge Luis",
			LastNames:     "Paredes Molina",
			LicenseNumber: "NAV-2021-0872",
		},
	}
	for _, in := range inputs {
		if _, err := s.clients.Create(ctx, in); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(inputs)).Msg("seeded clients")
	return nil
}

func (s *Seeder) seedYachts(ctx context.Context) error {
	existing, err := s.yachtRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	inputs := []ports.CreateYachtInput{
		{
			Brand:              "Azimut",
			Model:              "55S",
			Year:               2021,
			Size:               "55 ft",
			Capacity:           12,
			RegistrationNumber: "MC-YT-001",
			DailyPrice:         decimal.NewFromInt(1500),
		},
		{
			Brand:              "Sunseeker",
			Model:              "75 Yacht",
			Year:               2022,
			Size:               "75 ft",
			Capacity:           16,
			RegistrationNumber: "MC-YT-002",
			DailyPrice:         decimal.NewFromInt(2500),
		},
		{
			Brand:              "Princess",
			Model:              "V60",
			Year:               2020,
			Size:               "60 ft",
			Capacity:           10,
			RegistrationNumber: "MC-YT-003",
			DailyPrice:         decimal.NewFromInt(1800),
		},
	}
	for _, in := range inputs {
		if _, err := s.yachts.Create(ctx, in); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(inputs)).Msg("seeded yachts")
	return nil
}

// seedReservations pairs the seeded clients and yachts positionally: client n
// books yacht n. It requires at least three of each, which the earlier stages
// guarantee on a fresh database.
func (s *Seeder) seedReservations(ctx context.Context) error {
	existing, err := s.reservationRepo.All(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	yachts, err := s.yachtRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(clients) < 3 || len(yachts) < 3 {
		s.log.Warn().
			Int("clients", len(clients)).
			Int("yachts", len(yachts)).
			Msg("not enough seed data for reservations, skipping stage")
		return nil
	}

	now := time.Now().UTC().Truncate(24 * time.Hour)
	plans := []struct {
		client   *domain.Client
		yacht    *domain.Yacht
		startIn  time.Duration
		days     int
		status   domain.ReservationStatus
	}{
		{clients[0], yachts[0], 7 * 24 * time.Hour, 5, domain.ReservationConfirmed},
		{clients[1], yachts[1], 15 * 24 * time.Hour, 3, domain.ReservationPending},
		{clients[2], yachts[2], 30 * 24 * time.Hour, 7, domain.ReservationConfirmed},
	}
	for _, p := range plans {
		start := now.Add(p.startIn)
		in := ports.CreateReservationInput{
			ClientID:  p.client.ID,
			YachtID:   p.yacht.ID,
			StartDate: start,
			EndDate:   start.Add(time.Duration(p.days) * 24 * time.Hour),
			Status:    p.status,
			CreatedBy: "seeder",
		}
		if _, err := s.reservations.Create(ctx, in); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(plans)).Msg("seeded reservations")
	return nil
}
