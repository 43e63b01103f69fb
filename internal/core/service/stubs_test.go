package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// Shared in-memory stubs for the service tests. Each stub mirrors the lookup
// semantics of the real Mongo repository: unique-field finders return
// (nil, nil) on no match, GetByID returns the domain sentinel, and list
// methods return clones so tests cannot mutate stored state by accident.

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.User
	nextID  int
	failErr error // if set, every call returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetAll(_ context.Context) ([]*domain.User, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) GetActive(ctx context.Context) ([]*domain.User, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	active := all[:0]
	for _, u := range all {
		if u.Status.IsActive() {
			active = append(active, u)
		}
	}
	return active, nil
}

func (r *stubUserRepo) Insert(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	r.nextID++
	clone := *u
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byID[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

// ---------------------------------------------------------------------------
// Clients
// ---------------------------------------------------------------------------

type stubClientRepo struct {
	byID   map[string]*domain.Client
	nextID int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byID: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) findBy(match func(*domain.Client) bool) (*domain.Client, error) {
	for _, c := range r.byID {
		if match(c) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubClientRepo) GetByCedula(_ context.Context, cedula string) (*domain.Client, error) {
	return r.findBy(func(c *domain.Client) bool { return c.Cedula == cedula })
}

func (r *stubClientRepo) GetByEmail(_ context.Context, email string) (*domain.Client, error) {
	return r.findBy(func(c *domain.Client) bool { return c.Email == email })
}

func (r *stubClientRepo) GetByLicense(_ context.Context, license string) (*domain.Client, error) {
	return r.findBy(func(c *domain.Client) bool { return c.LicenseNumber == license })
}

func (r *stubClientRepo) GetAll(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(r.byID))
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClientRepo) GetActive(ctx context.Context) ([]*domain.Client, error) {
	all, _ := r.GetAll(ctx)
	active := all[:0]
	for _, c := range all {
		if c.Status.IsActive() {
			active = append(active, c)
		}
	}
	return active, nil
}

func (r *stubClientRepo) Insert(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.nextID++
	clone := *c
	clone.ID = fmt.Sprintf("client_%d", r.nextID)
	r.byID[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrClientNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

// ---------------------------------------------------------------------------
// Yachts
// ---------------------------------------------------------------------------

type stubYachtRepo struct {
	byID   map[string]*domain.Yacht
	nextID int
}

func newStubYachtRepo() *stubYachtRepo {
	return &stubYachtRepo{byID: make(map[string]*domain.Yacht)}
}

func (r *stubYachtRepo) GetByID(_ context.Context, id string) (*domain.Yacht, error) {
	y, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrYachtNotFound
	}
	clone := *y
	return &clone, nil
}

func (r *stubYachtRepo) GetAll(_ context.Context) ([]*domain.Yacht, error) {
	out := make([]*domain.Yacht, 0, len(r.byID))
	for _, y := range r.byID {
		clone := *y
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubYachtRepo) GetAvailable(ctx context.Context) ([]*domain.Yacht, error) {
	all, _ := r.GetAll(ctx)
	available := all[:0]
	for _, y := range all {
		if y.Availability.IsAvailable() {
			available = append(available, y)
		}
	}
	return available, nil
}

func (r *stubYachtRepo) Insert(_ context.Context, y *domain.Yacht) (*domain.Yacht, error) {
	r.nextID++
	clone := *y
	clone.ID = fmt.Sprintf("yacht_%d", r.nextID)
	r.byID[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubYachtRepo) Update(_ context.Context, y *domain.Yacht) error {
	if _, ok := r.byID[y.ID]; !ok {
		return domain.ErrYachtNotFound
	}
	clone := *y
	r.byID[y.ID] = &clone
	return nil
}

// ---------------------------------------------------------------------------
// Reservations
// ---------------------------------------------------------------------------

type stubReservationRepo struct {
	byID   map[string]*domain.Reservation
	nextID int
}

func newStubReservationRepo() *stubReservationRepo {
	return &stubReservationRepo{byID: make(map[string]*domain.Reservation)}
}

func (r *stubReservationRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	res, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	clone := *res
	return &clone, nil
}

func (r *stubReservationRepo) list(match func(*domain.Reservation) bool) []*domain.Reservation {
	out := make([]*domain.Reservation, 0, len(r.byID))
	for _, res := range r.byID {
		if match(res) {
			clone := *res
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubReservationRepo) All(_ context.Context) ([]*domain.Reservation, error) {
	return r.list(func(*domain.Reservation) bool { return true }), nil
}

func (r *stubReservationRepo) ByClient(_ context.Context, clientID string) ([]*domain.Reservation, error) {
	return r.list(func(res *domain.Reservation) bool { return res.ClientID == clientID }), nil
}

func (r *stubReservationRepo) ByYacht(_ context.Context, yachtID string) ([]*domain.Reservation, error) {
	return r.list(func(res *domain.Reservation) bool { return res.YachtID == yachtID }), nil
}

func (r *stubReservationRepo) ByStatus(_ context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	return r.list(func(res *domain.Reservation) bool { return res.Status == status }), nil
}

func (r *stubReservationRepo) Insert(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.nextID++
	clone := *res
	clone.ID = fmt.Sprintf("res_%d", r.nextID)
	r.byID[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubReservationRepo) Update(_ context.Context, res *domain.Reservation) error {
	if _, ok := r.byID[res.ID]; !ok {
		return domain.ErrReservationNotFound
	}
	clone := *res
	r.byID[res.ID] = &clone
	return nil
}

func (r *stubReservationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrReservationNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Sessions and activity
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	byID map[string]*ports.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{byID: make(map[string]*ports.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, sess *ports.Session) error {
	clone := *sess
	s.byID[sess.ID] = &clone
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*ports.Session, error) {
	sess, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *sess
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

// recordedActivity captures Record calls synchronously for assertions.
type recordedActivity struct {
	entries []*domain.ActivityLog
}

func (a *recordedActivity) Record(userID, action, detail string) {
	a.entries = append(a.entries, &domain.ActivityLog{
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

func (a *recordedActivity) byAction(action string) []*domain.ActivityLog {
	var out []*domain.ActivityLog
	for _, e := range a.entries {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}
