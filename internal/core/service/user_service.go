package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// UserService manages user accounts. Accounts are soft-deleted only: Delete
// flips the active flag, the document stays.
type UserService struct {
	repo       ports.UserRepository
	activity   ports.ActivityRecorder
	bcryptCost int
	log        zerolog.Logger
}

func NewUserService(repo ports.UserRepository, activity ports.ActivityRecorder, bcryptCost int, log zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, activity: activity, bcryptCost: bcryptCost, log: log}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *UserService) GetActive(ctx context.Context) ([]*domain.User, error) {
	return s.repo.GetActive(ctx)
}

// Search filters the active set by case-insensitive substring on username and
// email. Client-side filtering is fine at this catalog size.
func (s *UserService) Search(ctx context.Context, query string) ([]*domain.User, error) {
	users, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// Create validates username and email uniqueness sequentially before the
// insert. The checks are advisory (see the repository's unique indexes for
// the backstop); their order fixes which duplicate is reported first.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	if existing, err := s.repo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &domain.DuplicateFieldError{Field: "username"}
	}

	if existing, err := s.repo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &domain.DuplicateFieldError{Field: "email"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       domain.AccountActive,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.activity.Record(in.Actor, domain.ActionCreateUser, "created user "+created.Username)
	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Update replaces the account. An empty password keeps the stored hash;
// uniqueness is re-checked only for fields that actually changed.
func (s *UserService) Update(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidID
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	existing, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Username != existing.Username {
		if other, err := s.repo.GetByUsername(ctx, in.Username); err != nil {
			return nil, err
		} else if other != nil {
			return nil, &domain.DuplicateFieldError{Field: "username"}
		}
	}
	if in.Email != existing.Email {
		if other, err := s.repo.GetByEmail(ctx, in.Email); err != nil {
			return nil, err
		} else if other != nil {
			return nil, &domain.DuplicateFieldError{Field: "email"}
		}
	}

	hash := existing.PasswordHash
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	user := &domain.User{
		ID:           in.ID,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Status:       in.Status,
		CreatedAt:    existing.CreatedAt,
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.activity.Record(in.Actor, domain.ActionUpdateUser, "updated user "+user.Username)
	return user, nil
}

// Delete deactivates the account. The record remains queryable by id and in
// GetAll, but drops out of active listings.
func (s *UserService) Delete(ctx context.Context, id, actor string) error {
	if id == "" {
		return domain.ErrInvalidID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	user.Status = domain.AccountInactive
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.activity.Record(actor, domain.ActionDeleteUser, "deactivated user "+user.Username)
	return nil
}
