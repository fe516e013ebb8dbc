package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/opsgain/portops/internal/domain/dto"
)

func (c *Controller) CreateShareLink(ctx echo.Context) error {
	req := new(dto.ShareLinkRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	selection, err := req.Selection()
	if err != nil {
		return err
	}

	url, linkID, err := c.codec.Encode(selection)
	if err != nil {
		return fmt.Errorf("codec.Encode: %w", err)
	}

	return ctx.JSON(http.StatusOK, dto.ShareLinkResponse{URL: url, LinkID: linkID})
}

// ListAccesses returns the most recent shared-link resolutions.
func (c *Controller) ListAccesses(ctx echo.Context) error {
	limit, err := strconv.ParseUint(ctx.QueryParam("limit"), 10, 64)
	if err != nil || limit == 0 || limit > 1000 {
		limit = 100
	}

	accesses, err := c.store.ListAccesses(ctx.Request().Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, accesses)
}
