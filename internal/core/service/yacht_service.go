package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// YachtService manages the rental inventory. Yachts are soft-deleted only:
// Delete flips availability, the document stays so past reservations keep a
// resolvable reference.
type YachtService struct {
	repo ports.YachtRepository
	log  zerolog.Logger
}

func NewYachtService(repo ports.YachtRepository, log zerolog.Logger) *YachtService {
	return &YachtService{repo: repo, log: log}
}

func (s *YachtService) GetByID(ctx context.Context, id string) (*domain.Yacht, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *YachtService) GetAll(ctx context.Context) ([]*domain.Yacht, error) {
	return s.repo.GetAll(ctx)
}

func (s *YachtService) GetAvailable(ctx context.Context) ([]*domain.Yacht, error) {
	return s.repo.GetAvailable(ctx)
}

// Search filters the available set by case-insensitive substring on brand,
// model, and registration number.
func (s *YachtService) Search(ctx context.Context, query string) ([]*domain.Yacht, error) {
	yachts, err := s.repo.GetAvailable(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]*domain.Yacht, 0, len(yachts))
	for _, y := range yachts {
		if strings.Contains(strings.ToLower(y.Brand), q) ||
			strings.Contains(strings.ToLower(y.Model), q) ||
			strings.Contains(strings.ToLower(y.RegistrationNumber), q) {
			matched = append(matched, y)
		}
	}
	return matched, nil
}

// Create registers a yacht. The daily price feeds the pricing engine directly
// and must be non-negative; zero is allowed for promotional listings.
func (s *YachtService) Create(ctx context.Context, in ports.CreateYachtInput) (*domain.Yacht, error) {
	if in.DailyPrice.IsNegative() {
		return nil, domain.ErrNegativePrice
	}

	yacht := &domain.Yacht{
		Brand:              in.Brand,
		Model:              in.Model,
		Year:               in.Year,
		Size:               in.Size,
		Capacity:           in.Capacity,
		RegistrationNumber: in.RegistrationNumber,
		DailyPrice:         in.DailyPrice,
		Availability:       domain.YachtAvailable,
		CreatedAt:          time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, yacht)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("yacht", created.DisplayName()).Msg("yacht registered")
	return created, nil
}

// Update replaces the yacht. Price changes do not touch existing
// reservations; their totals were fixed at booking time.
func (s *YachtService) Update(ctx context.Context, in ports.UpdateYachtInput) (*domain.Yacht, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidID
	}
	if in.DailyPrice.IsNegative() {
		return nil, domain.ErrNegativePrice
	}

	existing, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	yacht := &domain.Yacht{
		ID:                 in.ID,
		Brand:              in.Brand,
		Model:              in.Model,
		Year:               in.Year,
		Size:               in.Size,
		Capacity:           in.Capacity,
		RegistrationNumber: in.RegistrationNumber,
		DailyPrice:         in.DailyPrice,
		Availability:       in.Availability,
		CreatedAt:          existing.CreatedAt,
	}
	if err := s.repo.Update(ctx, yacht); err != nil {
		return nil, err
	}
	return yacht, nil
}

// Delete marks the yacht unavailable.
func (s *YachtService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}

	yacht, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	yacht.Availability = domain.YachtUnavailable
	return s.repo.Update(ctx, yacht)
}
