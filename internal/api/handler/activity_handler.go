package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// ActivityHandler serves the audit log read surface. Entries are written
// asynchronously elsewhere; this handler only reads and prunes.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type pruneRequest struct {
	// Days is the retention window; entries older than now minus days are
	// removed.
	Days int `json:"days" validate:"required,gt=0"`
}

type pruneResponse struct {
	Removed int64 `json:"removed"`
}

// List returns recent audit entries, newest first. With ?user_id= the result
// is limited to one actor's entries.
//
// @Summary      List audit entries
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     string  false  "Filter by actor"
// @Param        limit    query     int     false  "Page size (default 50)"
// @Success      200      {array}   domain.ActivityLog
// @Failure      401      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Router       /v1/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if userID := c.QueryParam("user_id"); userID != "" {
		entries, err := h.service.ByUser(ctx, userID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, entries)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, err := h.service.Recent(ctx, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Prune removes audit entries older than the requested retention window.
//
// @Summary      Prune old audit entries
// @Tags         activity
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      pruneRequest  true  "Retention window in days"
// @Success      200   {object}  pruneResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/activity/prune [post]
func (h *ActivityHandler) Prune(c echo.Context) error {
	var req pruneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -req.Days)
	removed, err := h.service.PruneOlderThan(c.Request().Context(), cutoff)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pruneResponse{Removed: removed})
}
