package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/opsgain/portops/internal/domain"
	"github.com/opsgain/portops/internal/domain/dto"
	"github.com/opsgain/portops/internal/service/finance"
)

// GetDashboard resolves the period (query parameters may carry a shared
// link), loads its dataset and returns it with freshly computed metrics.
// Financial parameters can be overridden per request within their
// documented ranges; anything out of range is rejected here, never clamped
// silently inside the calculator.
func (c *Controller) GetDashboard(ctx echo.Context) error {
	params := finance.DefaultParameters()
	if err := ctx.Bind(&params); err != nil {
		return err
	}
	if err := ctx.Validate(&params); err != nil {
		return err
	}

	data, err := c.sync.LoadPeriodData(ctx.Request().Context(), ctx.QueryParams(), ctx.RealIP())
	if err != nil {
		return err
	}

	metrics := c.calc.Calculate(data, params)

	return ctx.JSON(http.StatusOK, dto.DashboardResponse{Dataset: data, Metrics: metrics})
}

// GetParams returns the effective default financial parameters.
func (c *Controller) GetParams(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, finance.DefaultParameters())
}

// GetPeriods returns the named quick-select ranges.
func (c *Controller) GetPeriods(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.DefaultPeriods(time.Now()))
}
