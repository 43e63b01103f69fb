package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

type reservationFixture struct {
	repo     *stubReservationRepo
	clients  *stubClientRepo
	yachts   *stubYachtRepo
	activity *recordedActivity
	svc      *ReservationService

	client *domain.Client
	yacht  *domain.Yacht
}

func newReservationFixture(t *testing.T, dailyPrice int64) *reservationFixture {
	t.Helper()
	f := &reservationFixture{
		repo:     newStubReservationRepo(),
		clients:  newStubClientRepo(),
		yachts:   newStubYachtRepo(),
		activity: &recordedActivity{},
	}
	f.svc = NewReservationService(f.repo, f.clients, f.yachts, f.activity, discardLogger)

	var err error
	f.client, err = f.clients.Insert(context.Background(), &domain.Client{
		Email: "carlos@example.com", Cedula: "1102345678",
		FirstNames: "Carlos", LastNames: "Mendoza",
		Status: domain.AccountActive,
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	f.yacht, err = f.yachts.Insert(context.Background(), &domain.Yacht{
		Brand: "Azimut", Model: "55S", Year: 2021,
		DailyPrice:   decimal.NewFromInt(dailyPrice),
		Availability: domain.YachtAvailable,
	})
	if err != nil {
		t.Fatalf("seed yacht: %v", err)
	}
	return f
}

func (f *reservationFixture) input(days int) ports.CreateReservationInput {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return ports.CreateReservationInput{
		ClientID:  f.client.ID,
		YachtID:   f.yacht.ID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days),
		CreatedBy: "user_1",
	}
}

// ---------------------------------------------------------------------------
// Create and pricing
// ---------------------------------------------------------------------------

func TestReservationService_Create_PricesWholeDays(t *testing.T) {
	f := newReservationFixture(t, 1500)

	created, err := f.svc.Create(context.Background(), f.input(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.TotalPrice.Equal(decimal.NewFromInt(7500)) {
		t.Errorf("5 days at 1500: expected total 7500, got %s", created.TotalPrice)
	}
	if created.Status != domain.ReservationPending {
		t.Errorf("missing status must default to pending, got %q", created.Status)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps must be stamped")
	}
	if created.ModifiedBy != "user_1" {
		t.Errorf("expected ModifiedBy user_1, got %q", created.ModifiedBy)
	}
	if got := f.activity.byAction(domain.ActionCreateReservation); len(got) != 1 {
		t.Errorf("expected 1 CREATE_RESERVATION entry, got %d", len(got))
	}
}

func TestReservationService_Create_PartialDayRoundsDown(t *testing.T) {
	f := newReservationFixture(t, 1000)

	in := f.input(2)
	in.EndDate = in.EndDate.Add(23 * time.Hour) // 2 days 23 hours
	created, err := f.svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.TotalPrice.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("partial day must not be billed: expected 2000, got %s", created.TotalPrice)
	}
}

func TestReservationService_Create_ExplicitStatusKept(t *testing.T) {
	f := newReservationFixture(t, 1500)

	in := f.input(5)
	in.Status = domain.ReservationConfirmed
	created, err := f.svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != domain.ReservationConfirmed {
		t.Errorf("expected confirmed, got %q", created.Status)
	}
}

func TestReservationService_Create_InvalidDateRange(t *testing.T) {
	f := newReservationFixture(t, 1500)

	in := f.input(5)
	in.EndDate = in.StartDate // zero-length range
	if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("equal dates: expected ErrInvalidDateRange, got %v", err)
	}

	in.EndDate = in.StartDate.AddDate(0, 0, -1)
	if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("inverted dates: expected ErrInvalidDateRange, got %v", err)
	}
}

func TestReservationService_Create_InvalidStatus(t *testing.T) {
	f := newReservationFixture(t, 1500)

	in := f.input(5)
	in.Status = "approved"
	if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestReservationService_Create_UnknownClient(t *testing.T) {
	f := newReservationFixture(t, 1500)

	in := f.input(5)
	in.ClientID = "ghost"
	if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestReservationService_Create_UnknownYacht(t *testing.T) {
	f := newReservationFixture(t, 1500)

	in := f.input(5)
	in.YachtID = "ghost"
	if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrYachtNotFound) {
		t.Fatalf("expected ErrYachtNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestReservationService_Update_RecomputesTotal(t *testing.T) {
	f := newReservationFixture(t, 1500)
	created, _ := f.svc.Create(context.Background(), f.input(5))

	updated, err := f.svc.Update(context.Background(), ports.UpdateReservationInput{
		ID:         created.ID,
		ClientID:   created.ClientID,
		YachtID:    created.YachtID,
		StartDate:  created.StartDate,
		EndDate:    created.StartDate.AddDate(0, 0, 3),
		Status:     domain.ReservationConfirmed,
		ModifiedBy: "user_2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.TotalPrice.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("3 days at 1500: expected 4500, got %s", updated.TotalPrice)
	}
	if updated.ModifiedBy != "user_2" {
		t.Errorf("expected ModifiedBy user_2, got %q", updated.ModifiedBy)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt must survive the update")
	}
}

func TestReservationService_Update_EmptyStatusKeepsExisting(t *testing.T) {
	f := newReservationFixture(t, 1500)
	in := f.input(5)
	in.Status = domain.ReservationConfirmed
	created, _ := f.svc.Create(context.Background(), in)

	updated, err := f.svc.Update(context.Background(), ports.UpdateReservationInput{
		ID:        created.ID,
		ClientID:  created.ClientID,
		YachtID:   created.YachtID,
		StartDate: created.StartDate,
		EndDate:   created.EndDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.ReservationConfirmed {
		t.Errorf("empty status must keep confirmed, got %q", updated.Status)
	}
}

func TestReservationService_Update_UsesCurrentDailyPrice(t *testing.T) {
	f := newReservationFixture(t, 1500)
	created, _ := f.svc.Create(context.Background(), f.input(5))

	// Reprice the yacht, then update the reservation: the new rate applies.
	yacht, _ := f.yachts.GetByID(context.Background(), f.yacht.ID)
	yacht.DailyPrice = decimal.NewFromInt(2000)
	_ = f.yachts.Update(context.Background(), yacht)

	updated, err := f.svc.Update(context.Background(), ports.UpdateReservationInput{
		ID:        created.ID,
		ClientID:  created.ClientID,
		YachtID:   created.YachtID,
		StartDate: created.StartDate,
		EndDate:   created.EndDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.TotalPrice.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("5 days at 2000: expected 10000, got %s", updated.TotalPrice)
	}
}

// ---------------------------------------------------------------------------
// Cancel
// ---------------------------------------------------------------------------

func TestReservationService_Cancel_StampsAudit(t *testing.T) {
	f := newReservationFixture(t, 1500)
	created, _ := f.svc.Create(context.Background(), f.input(5))

	cancelled, err := f.svc.Cancel(context.Background(), created.ID, "user_9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != domain.ReservationCancelled {
		t.Errorf("expected cancelled, got %q", cancelled.Status)
	}
	if cancelled.CancelledBy != "user_9" || cancelled.ModifiedBy != "user_9" {
		t.Errorf("audit stamps wrong: cancelled_by=%q modified_by=%q", cancelled.CancelledBy, cancelled.ModifiedBy)
	}
	if !cancelled.TotalPrice.Equal(created.TotalPrice) {
		t.Error("cancelling must not change the total")
	}
	if got := f.activity.byAction(domain.ActionCancelReservation); len(got) != 1 {
		t.Errorf("expected 1 CANCEL_RESERVATION entry, got %d", len(got))
	}
}

func TestReservationService_Cancel_TwiceRefreshesStamps(t *testing.T) {
	f := newReservationFixture(t, 1500)
	created, _ := f.svc.Create(context.Background(), f.input(5))

	first, _ := f.svc.Cancel(context.Background(), created.ID, "user_1")
	second, err := f.svc.Cancel(context.Background(), created.ID, "user_2")
	if err != nil {
		t.Fatalf("second cancel must succeed, got %v", err)
	}
	if second.Status != domain.ReservationCancelled {
		t.Errorf("expected cancelled, got %q", second.Status)
	}
	if second.CancelledBy != "user_2" {
		t.Errorf("second cancel must refresh CancelledBy, got %q", second.CancelledBy)
	}
	_ = first
}

func TestReservationService_Cancel_ToleratesDanglingReferences(t *testing.T) {
	f := newReservationFixture(t, 1500)
	created, _ := f.svc.Create(context.Background(), f.input(5))

	// Simulate the yacht disappearing from the store entirely.
	delete(f.yachts.byID, f.yacht.ID)

	if _, err := f.svc.Cancel(context.Background(), created.ID, "user_1"); err != nil {
		t.Fatalf("cancel must not re-resolve references, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete, listings, summaries
// ---------------------------------------------------------------------------

func TestReservationService_Delete_IsHard(t *testing.T) {
	f := newReservationFixture(t, 1500)
	created, _ := f.svc.Create(context.Background(), f.input(5))

	if err := f.svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.svc.GetByID(context.Background(), created.ID); !errors.Is(err, domain.ErrReservationNotFound) {
		t.Fatalf("deleted reservation must be gone, got %v", err)
	}
}

func TestReservationService_ByStatus_RejectsUnknownStatus(t *testing.T) {
	f := newReservationFixture(t, 1500)

	if _, err := f.svc.ByStatus(context.Background(), "approved"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestSummarize_ResolvesNames(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	r := &domain.Reservation{
		ClientID:   "client_1",
		YachtID:    "yacht_1",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 5),
		TotalPrice: decimal.NewFromInt(7500),
	}

	summary := Summarize(r,
		func(id string) (string, bool) { return "Carlos Mendoza", id == "client_1" },
		func(id string) (string, bool) { return "Azimut 55S (2021)", id == "yacht_1" },
	)
	if summary.ClientName != "Carlos Mendoza" {
		t.Errorf("client name: got %q", summary.ClientName)
	}
	if summary.YachtName != "Azimut 55S (2021)" {
		t.Errorf("yacht name: got %q", summary.YachtName)
	}
	if summary.Days != 5 {
		t.Errorf("expected 5 days, got %d", summary.Days)
	}
	if !summary.TotalPrice.Equal(decimal.NewFromInt(7500)) {
		t.Errorf("expected total 7500, got %s", summary.TotalPrice)
	}
}

func TestSummarize_DanglingReferencesRenderUnknown(t *testing.T) {
	r := &domain.Reservation{ClientID: "gone", YachtID: "gone"}

	never := func(string) (string, bool) { return "", false }
	summary := Summarize(r, never, never)
	if summary.ClientName != "unknown client" {
		t.Errorf("expected unknown client, got %q", summary.ClientName)
	}
	if summary.YachtName != "unknown yacht" {
		t.Errorf("expected unknown yacht, got %q", summary.YachtName)
	}
}
