package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// binder decodes JSON bodies through sonic and defers everything else to
// echo's default binder.
type binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() echo.Binder {
	return &binder{}
}

func (b *binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength != 0 && strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if err := sonic.Unmarshal(body, i); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		return b.fallback.BindQueryParams(c, i)
	}

	return b.fallback.Bind(i, c)
}
