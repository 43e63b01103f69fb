package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// ClientHandler handles HTTP requests for rental customers.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type createClientRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Cedula        string `json:"cedula" validate:"required"`
	Phone         string `json:"phone"`
	FirstNames    string `json:"first_names" validate:"required"`
	LastNames     string `json:"last_names" validate:"required"`
	LicenseNumber string `json:"license_number"`
}

type updateClientRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Cedula        string `json:"cedula" validate:"required"`
	Phone         string `json:"phone"`
	FirstNames    string `json:"first_names" validate:"required"`
	LastNames     string `json:"last_names" validate:"required"`
	LicenseNumber string `json:"license_number"`
	Status        string `json:"status" validate:"required,oneof=active inactive"`
}

// List returns clients. With ?active=true only active clients are returned;
// ?q= filters the active set by name, cedula, or email.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        active  query     bool    false  "Only active clients"
// @Param        q       query     string  false  "Substring filter on name, cedula, or email"
// @Success      200     {array}   domain.Client
// @Failure      401     {object}  map[string]string
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if q := c.QueryParam("q"); q != "" {
		clients, err := h.service.Search(ctx, q)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, clients)
	}

	var (
		clients []*domain.Client
		err     error
	)
	if c.QueryParam("active") == "true" {
		clients, err = h.service.GetActive(ctx)
	} else {
		clients, err = h.service.GetAll(ctx)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Get returns a single client by id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  map[string]string
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create registers a new client.
//
// @Summary      Register a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), ports.CreateClientInput{
		Email:         req.Email,
		Cedula:        req.Cedula,
		Phone:         req.Phone,
		FirstNames:    req.FirstNames,
		LastNames:     req.LastNames,
		LicenseNumber: req.LicenseNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Update replaces a client record.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Client id"
// @Param        body  body      updateClientRequest  true  "Client details"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Update(c.Request().Context(), ports.UpdateClientInput{
		ID:            c.Param("id"),
		Email:         req.Email,
		Cedula:        req.Cedula,
		Phone:         req.Phone,
		FirstNames:    req.FirstNames,
		LastNames:     req.LastNames,
		LicenseNumber: req.LicenseNumber,
		Status:        domain.AccountStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete deactivates a client. The record is kept; existing reservations
// keep their reference.
//
// @Summary      Deactivate a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Client id"
// @Success      204  "client deactivated"
// @Failure      404  {object}  map[string]string
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
