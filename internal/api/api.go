package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/opsgain/portops/internal/api/controller"
	"github.com/opsgain/portops/internal/pkg/constants"
	"github.com/opsgain/portops/internal/pkg/logger"
	"github.com/opsgain/portops/internal/pkg/store"
	"github.com/opsgain/portops/internal/service/dataset"
	"github.com/opsgain/portops/internal/service/finance"
	"github.com/opsgain/portops/internal/service/sharelink"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (svc *APIService) Handler() *echo.Echo {
	return svc.router
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	fingerprint := viper.GetString(constants.ViperDataFingerprint)

	codec := sharelink.NewCodec(viper.GetString(constants.ViperBaseURL), fingerprint)
	generator := dataset.NewGenerator(fingerprint)

	var repo *dataset.Repository
	if viper.GetBool(constants.ViperUseRealData) {
		repo = dataset.NewRepository(viper.GetString(constants.ViperDataDir))
	}

	sync := dataset.NewSynchronizer(generator, repo, codec, st)
	calc := finance.NewCalculator(fingerprint)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(sync, calc, codec, st)

	api.GET("/dashboard", cntrl.GetDashboard)
	api.GET("/params", cntrl.GetParams)
	api.GET("/periods", cntrl.GetPeriods)
	api.GET("/export", cntrl.ExportReport)
	api.POST("/share", cntrl.CreateShareLink)

	if st != nil {
		api.GET("/accesses", cntrl.ListAccesses, svc.GateMiddleware)
	}

	return svc, nil
}
