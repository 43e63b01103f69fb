package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marinacaribe/yacht-rental-system/internal/api/metrics"
	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
	"github.com/marinacaribe/yacht-rental-system/internal/core/service"
)

const dateLayout = "2006-01-02"

// ReservationHandler handles HTTP requests for bookings. It also resolves
// client and yacht display names for the detailed listing, tolerating
// dangling references.
type ReservationHandler struct {
	service ports.ReservationService
	clients ports.ClientService
	yachts  ports.YachtService
}

func NewReservationHandler(svc ports.ReservationService, clients ports.ClientService, yachts ports.YachtService) *ReservationHandler {
	return &ReservationHandler{service: svc, clients: clients, yachts: yachts}
}

type createReservationRequest struct {
	ClientID  string `json:"client_id" validate:"required"`
	YachtID   string `json:"yacht_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

type updateReservationRequest struct {
	ClientID  string `json:"client_id" validate:"required"`
	YachtID   string `json:"yacht_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "dates must use YYYY-MM-DD")
	}
	return d, nil
}

// List returns reservations, newest first. Filters are mutually exclusive
// and checked in order: client_id, yacht_id, status. With ?detailed=true each
// reservation is wrapped with resolved client and yacht names.
//
// @Summary      List reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by client"
// @Param        yacht_id   query     string  false  "Filter by yacht"
// @Param        status     query     string  false  "Filter by status"  Enums(pending, confirmed, cancelled)
// @Param        detailed   query     bool    false  "Wrap each entry with resolved display names"
// @Success      200        {array}   domain.Reservation
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Router       /v1/reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		reservations []*domain.Reservation
		err          error
	)
	switch {
	case c.QueryParam("client_id") != "":
		reservations, err = h.service.ByClient(ctx, c.QueryParam("client_id"))
	case c.QueryParam("yacht_id") != "":
		reservations, err = h.service.ByYacht(ctx, c.QueryParam("yacht_id"))
	case c.QueryParam("status") != "":
		reservations, err = h.service.ByStatus(ctx, domain.ReservationStatus(c.QueryParam("status")))
	default:
		reservations, err = h.service.All(ctx)
	}
	if err != nil {
		return err
	}

	if c.QueryParam("detailed") != "true" {
		return c.JSON(http.StatusOK, reservations)
	}

	clientNames, yachtNames, err := h.nameLookups(c)
	if err != nil {
		return err
	}
	summaries := make([]ports.ReservationSummary, 0, len(reservations))
	for _, r := range reservations {
		summaries = append(summaries, service.Summarize(r, clientNames, yachtNames))
	}
	return c.JSON(http.StatusOK, summaries)
}

// nameLookups loads the full client and yacht sets once and serves name
// resolution from memory. One round trip per collection beats a lookup per
// reservation at this catalog size.
func (h *ReservationHandler) nameLookups(c echo.Context) (ports.NameLookup, ports.NameLookup, error) {
	ctx := c.Request().Context()

	clients, err := h.clients.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	yachts, err := h.yachts.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	clientNames := make(map[string]string, len(clients))
	for _, cl := range clients {
		clientNames[cl.ID] = cl.FullName()
	}
	yachtNames := make(map[string]string, len(yachts))
	for _, y := range yachts {
		yachtNames[y.ID] = y.DisplayName()
	}

	lookupClient := func(id string) (string, bool) {
		name, ok := clientNames[id]
		return name, ok
	}
	lookupYacht := func(id string) (string, bool) {
		name, ok := yachtNames[id]
		return name, ok
	}
	return lookupClient, lookupYacht, nil
}

// Get returns a single reservation by id.
//
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reservation id"
// @Success      200  {object}  domain.Reservation
// @Failure      404  {object}  map[string]string
// @Router       /v1/reservations/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	r, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// Create books a yacht. The total price is computed server-side from the
// date range and the yacht's daily price.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReservationRequest  true  "Booking details (dates as YYYY-MM-DD)"
// @Success      201   {object}  domain.Reservation
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return err
	}
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	r, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		ClientID:  req.ClientID,
		YachtID:   req.YachtID,
		StartDate: start,
		EndDate:   end,
		Status:    domain.ReservationStatus(req.Status),
		CreatedBy: actor,
	})
	if err != nil {
		return err
	}

	metrics.ReservationsCreatedTotal.WithLabelValues(string(r.Status)).Inc()
	price, _ := r.TotalPrice.Float64()
	metrics.ReservationTotalPrice.Observe(price)
	return c.JSON(http.StatusCreated, r)
}

// Update replaces a reservation; the total is recomputed server-side.
//
// @Summary      Update a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Reservation id"
// @Param        body  body      updateReservationRequest  true  "Booking details (dates as YYYY-MM-DD)"
// @Success      200   {object}  domain.Reservation
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/reservations/{id} [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	var req updateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return err
	}
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	r, err := h.service.Update(c.Request().Context(), ports.UpdateReservationInput{
		ID:         c.Param("id"),
		ClientID:   req.ClientID,
		YachtID:    req.YachtID,
		StartDate:  start,
		EndDate:    end,
		Status:     domain.ReservationStatus(req.Status),
		ModifiedBy: actor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// Cancel marks a reservation cancelled, stamping who did it.
//
// @Summary      Cancel a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reservation id"
// @Success      200  {object}  domain.Reservation
// @Failure      404  {object}  map[string]string
// @Router       /v1/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c echo.Context) error {
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	r, err := h.service.Cancel(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}

	metrics.ReservationsCancelledTotal.Inc()
	return c.JSON(http.StatusOK, r)
}

// Delete removes a reservation permanently.
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Reservation id"
// @Success      204  "reservation removed"
// @Failure      404  {object}  map[string]string
// @Router       /v1/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
