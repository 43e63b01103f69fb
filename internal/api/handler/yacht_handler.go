package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// YachtHandler handles HTTP requests for the rental inventory.
type YachtHandler struct {
	service ports.YachtService
}

func NewYachtHandler(service ports.YachtService) *YachtHandler {
	return &YachtHandler{service: service}
}

// DailyPrice travels as a string to avoid float rounding on money values.
type createYachtRequest struct {
	Brand              string `json:"brand" validate:"required"`
	Model              string `json:"model" validate:"required"`
	Year               int    `json:"year" validate:"required,gt=1900"`
	Size               string `json:"size"`
	Capacity           int    `json:"capacity" validate:"gt=0"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
	DailyPrice         string `json:"daily_price" validate:"required"`
}

type updateYachtRequest struct {
	Brand              string `json:"brand" validate:"required"`
	Model              string `json:"model" validate:"required"`
	Year               int    `json:"year" validate:"required,gt=1900"`
	Size               string `json:"size"`
	Capacity           int    `json:"capacity" validate:"gt=0"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
	DailyPrice         string `json:"daily_price" validate:"required"`
	Availability       string `json:"availability" validate:"required,oneof=available unavailable"`
}

// List returns yachts. With ?available=true only available yachts are
// returned; ?q= filters the available set by brand, model, or registration.
//
// @Summary      List yachts
// @Tags         yachts
// @Produce      json
// @Security     BearerAuth
// @Param        available  query     bool    false  "Only available yachts"
// @Param        q          query     string  false  "Substring filter on brand, model, or registration"
// @Success      200        {array}   domain.Yacht
// @Failure      401        {object}  map[string]string
// @Router       /v1/yachts [get]
func (h *YachtHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if q := c.QueryParam("q"); q != "" {
		yachts, err := h.service.Search(ctx, q)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, yachts)
	}

	var (
		yachts []*domain.Yacht
		err    error
	)
	if c.QueryParam("available") == "true" {
		yachts, err = h.service.GetAvailable(ctx)
	} else {
		yachts, err = h.service.GetAll(ctx)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, yachts)
}

// Get returns a single yacht by id.
//
// @Summary      Get a yacht
// @Tags         yachts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Yacht id"
// @Success      200  {object}  domain.Yacht
// @Failure      404  {object}  map[string]string
// @Router       /v1/yachts/{id} [get]
func (h *YachtHandler) Get(c echo.Context) error {
	yacht, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, yacht)
}

// Create registers a new yacht.
//
// @Summary      Register a yacht
// @Tags         yachts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createYachtRequest  true  "Yacht details"
// @Success      201   {object}  domain.Yacht
// @Failure      400   {object}  map[string]string
// @Router       /v1/yachts [post]
func (h *YachtHandler) Create(c echo.Context) error {
	var req createYachtRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	price, err := decimal.NewFromString(req.DailyPrice)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "daily_price must be a decimal number")
	}

	yacht, err := h.service.Create(c.Request().Context(), ports.CreateYachtInput{
		Brand:              req.Brand,
		Model:              req.Model,
		Year:               req.Year,
		Size:               req.Size,
		Capacity:           req.Capacity,
		RegistrationNumber: req.RegistrationNumber,
		DailyPrice:         price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, yacht)
}

// Update replaces a yacht record. Existing reservations keep the totals they
// were priced at.
//
// @Summary      Update a yacht
// @Tags         yachts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Yacht id"
// @Param        body  body      updateYachtRequest  true  "Yacht details"
// @Success      200   {object}  domain.Yacht
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/yachts/{id} [put]
func (h *YachtHandler) Update(c echo.Context) error {
	var req updateYachtRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	price, err := decimal.NewFromString(req.DailyPrice)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "daily_price must be a decimal number")
	}

	yacht, err := h.service.Update(c.Request().Context(), ports.UpdateYachtInput{
		ID:                 c.Param("id"),
		Brand:              req.Brand,
		Model:              req.Model,
		Year:               req.Year,
		Size:               req.Size,
		Capacity:           req.Capacity,
		RegistrationNumber: req.RegistrationNumber,
		DailyPrice:         price,
		Availability:       domain.Availability(req.Availability),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, yacht)
}

// Delete retires a yacht from the rental fleet. The record is kept.
//
// @Summary      Retire a yacht
// @Tags         yachts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Yacht id"
// @Success      204  "yacht retired"
// @Failure      404  {object}  map[string]string
// @Router       /v1/yachts/{id} [delete]
func (h *YachtHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
