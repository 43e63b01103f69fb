package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// ClientService manages rental customers. Clients are soft-deleted only.
type ClientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, log: log}
}

func (s *ClientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClientService) GetAll(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.GetAll(ctx)
}

func (s *ClientService) GetActive(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.GetActive(ctx)
}

// Search filters the active set by case-insensitive substring across names,
// cedula, and email.
func (s *ClientService) Search(ctx context.Context, query string) ([]*domain.Client, error) {
	clients, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]*domain.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.FullName()), q) ||
			strings.Contains(strings.ToLower(c.Cedula), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// Create registers a client after checking cedula, email, and license number
// for duplicates, in that order. The license check is skipped when the field
// is empty; not every client holds a nautical license.
func (s *ClientService) Create(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	if err := s.checkUnique(ctx, in.Cedula, in.Email, in.LicenseNumber, nil); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := &domain.Client{
		Email:         in.Email,
		Cedula:        in.Cedula,
		Phone:         in.Phone,
		FirstNames:    in.FirstNames,
		LastNames:     in.LastNames,
		LicenseNumber: in.LicenseNumber,
		Status:        domain.AccountActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Insert(ctx, client)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("cedula", created.Cedula).Msg("client registered")
	return created, nil
}

// Update replaces the client, re-checking uniqueness only for the fields that
// changed and stamping UpdatedAt.
func (s *ClientService) Update(ctx context.Context, in ports.UpdateClientInput) (*domain.Client, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, in.Cedula, in.Email, in.LicenseNumber, existing); err != nil {
		return nil, err
	}

	client := &domain.Client{
		ID:            in.ID,
		Email:         in.Email,
		Cedula:        in.Cedula,
		Phone:         in.Phone,
		FirstNames:    in.FirstNames,
		LastNames:     in.LastNames,
		LicenseNumber: in.LicenseNumber,
		Status:        in.Status,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete deactivates the client. Reservations referencing the client keep
// their id; listings render dangling references as unknown.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}

	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	client.Status = domain.AccountInactive
	client.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, client)
}

// checkUnique runs the duplicate pre-checks in the fixed order cedula, email,
// license. On update, matches against the record being edited are not
// duplicates.
func (s *ClientService) checkUnique(ctx context.Context, cedula, email, license string, self *domain.Client) error {
	if self == nil || cedula != self.Cedula {
		if other, err := s.repo.GetByCedula(ctx, cedula); err != nil {
			return err
		} else if other != nil {
			return &domain.DuplicateFieldError{Field: "cedula"}
		}
	}
	if self == nil || email != self.Email {
		if other, err := s.repo.GetByEmail(ctx, email); err != nil {
			return err
		} else if other != nil {
			return &domain.DuplicateFieldError{Field: "email"}
		}
	}
	if license != "" && (self == nil || license != self.LicenseNumber) {
		if other, err := s.repo.GetByLicense(ctx, license); err != nil {
			return err
		} else if other != nil {
			return &domain.DuplicateFieldError{Field: "license_number"}
		}
	}
	return nil
}
