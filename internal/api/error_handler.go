package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/opsgain/portops/internal/domain"
	"github.com/opsgain/portops/internal/pkg/constants"
)

func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	walk := err
	for walk != nil {
		if ce, ok := walk.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		if he, ok := walk.(*echo.HTTPError); ok {
			code = he.Code
			break
		}
		walk = errors.Unwrap(walk)
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
