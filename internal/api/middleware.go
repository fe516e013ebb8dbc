package api

import (
	"github.com/labstack/echo/v4"
	"github.com/opsgain/portops/internal/pkg/constants"
	"github.com/opsgain/portops/internal/pkg/utils"
	"github.com/spf13/viper"
)

// GateMiddleware is the opaque "is this caller allowed" check in front of
// operator-only endpoints. It has no effect on data correctness.
func (svc *APIService) GateMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
		if err != nil {
			return constants.ErrUnauthorized
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		if token.Secret != viper.GetString(constants.ViperSecretKey) {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}
