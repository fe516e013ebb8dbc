package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/opsgain/portops/internal/service/export"
	"github.com/opsgain/portops/internal/service/finance"
)

// ExportReport streams the multi-section report for the resolved period.
func (c *Controller) ExportReport(ctx echo.Context) error {
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

	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="opsgain_report.csv"`)
	ctx.Response().WriteHeader(http.StatusOK)

	return export.WriteReport(ctx.Response(), data, metrics)
}
