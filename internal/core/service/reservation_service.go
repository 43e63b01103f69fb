package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// ReservationService owns the booking lifecycle and the pricing engine.
//
// Totals are computed once, at create or update time, from the date range and
// the yacht's daily price at that moment. Later price changes on the yacht do
// not reprice existing reservations.
type ReservationService struct {
	repo     ports.ReservationRepository
	clients  ports.ClientRepository
	yachts   ports.YachtRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewReservationService(
	repo ports.ReservationRepository,
	clients ports.ClientRepository,
	yachts ports.YachtRepository,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		repo:     repo,
		clients:  clients,
		yachts:   yachts,
		activity: activity,
		log:      log,
	}
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReservationService) All(ctx context.Context) ([]*domain.Reservation, error) {
	return s.repo.All(ctx)
}

func (s *ReservationService) ByClient(ctx context.Context, clientID string) ([]*domain.Reservation, error) {
	return s.repo.ByClient(ctx, clientID)
}

func (s *ReservationService) ByYacht(ctx context.Context, yachtID string) ([]*domain.Reservation, error) {
	return s.repo.ByYacht(ctx, yachtID)
}

func (s *ReservationService) ByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	if !domain.ValidReservationStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.ByStatus(ctx, status)
}

// Create books a yacht for a client. The referenced client and yacht must
// exist at booking time; the total is whole days times the yacht's current
// daily price. A missing status defaults to pending.
func (s *ReservationService) Create(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	if !in.EndDate.After(in.StartDate) {
		return nil, domain.ErrInvalidDateRange
	}

	status := in.Status
	if status == "" {
		status = domain.ReservationPending
	}
	if !domain.ValidReservationStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	if _, err := s.clients.GetByID(ctx, in.ClientID); err != nil {
		return nil, err
	}
	yacht, err := s.yachts.GetByID(ctx, in.YachtID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r := &domain.Reservation{
		ClientID:   in.ClientID,
		YachtID:    in.YachtID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Status:     status,
		TotalPrice: domain.RentalPrice(in.StartDate, in.EndDate, yacht.DailyPrice),
		CreatedAt:  now,
		UpdatedAt:  now,
		ModifiedBy: in.CreatedBy,
	}

	created, err := s.repo.Insert(ctx, r)
	if err != nil {
		return nil, err
	}

	s.activity.Record(in.CreatedBy, domain.ActionCreateReservation,
		"reserved yacht "+yacht.DisplayName()+" for client "+in.ClientID)
	s.log.Info().
		Str("reservation_id", created.ID).
		Str("yacht_id", created.YachtID).
		Str("total", created.TotalPrice.String()).
		Msg("reservation created")
	return created, nil
}

// Update replaces the reservation, re-resolving both references and
// recomputing the total from the new dates and the yacht's current daily
// price. An empty status keeps the existing one; CreatedAt and CancelledBy
// survive the replacement.
func (s *ReservationService) Update(ctx context.Context, in ports.UpdateReservationInput) (*domain.Reservation, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidID
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, domain.ErrInvalidDateRange
	}

	existing, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = existing.Status
	}
	if !domain.ValidReservationStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	if _, err := s.clients.GetByID(ctx, in.ClientID); err != nil {
		return nil, err
	}
	yacht, err := s.yachts.GetByID(ctx, in.YachtID)
	if err != nil {
		return nil, err
	}

	r := &domain.Reservation{
		ID:          in.ID,
		ClientID:    in.ClientID,
		YachtID:     in.YachtID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		TotalPrice:  domain.RentalPrice(in.StartDate, in.EndDate, yacht.DailyPrice),
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
		ModifiedBy:  in.ModifiedBy,
		CancelledBy: existing.CancelledBy,
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Cancel stamps the reservation cancelled, recording who did it and when.
// It writes through the repository directly rather than Update so that a
// reservation whose client or yacht has since gone dangling can still be
// cancelled. Cancelling twice is allowed and refreshes the audit stamps.
func (s *ReservationService) Cancel(ctx context.Context, id, cancelledBy string) (*domain.Reservation, error) {
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Status = domain.ReservationCancelled
	r.CancelledBy = cancelledBy
	r.ModifiedBy = cancelledBy
	r.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	s.activity.Record(cancelledBy, domain.ActionCancelReservation, "cancelled reservation "+id)
	s.log.Info().Str("reservation_id", id).Msg("reservation cancelled")
	return r, nil
}

// Delete removes the reservation permanently.
func (s *ReservationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

// Summarize enriches a reservation with display names resolved through the
// supplied lookups. Dangling references render as "unknown client" and
// "unknown yacht" rather than failing the listing.
func Summarize(r *domain.Reservation, clientName, yachtName ports.NameLookup) ports.ReservationSummary {
	cn, ok := clientName(r.ClientID)
	if !ok {
		cn = "unknown client"
	}
	yn, ok := yachtName(r.YachtID)
	if !ok {
		yn = "unknown yacht"
	}
	return ports.ReservationSummary{
		Reservation: r,
		ClientName:  cn,
		YachtName:   yn,
		Days:        domain.WholeDays(r.StartDate, r.EndDate),
		TotalPrice:  r.TotalPrice,
	}
}
