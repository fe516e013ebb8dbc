package main

import (
	"context"
	"strings"

	"github.com/joho/godotenv"
	"github.com/opsgain/portops/internal/api"
	"github.com/opsgain/portops/internal/pkg/constants"
	"github.com/opsgain/portops/internal/pkg/logger"
	"github.com/opsgain/portops/internal/pkg/store"
	"github.com/opsgain/portops/internal/pkg/store/xpgx"
	"github.com/spf13/viper"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	initConfig()

	var st store.Store
	if url := viper.GetString(constants.ViperDatabaseURL); url != "" {
		pool, err := xpgx.Connect(ctx, url)
		if err != nil {
			logger.Fatal(ctx, err)
		}
		defer pool.Close()
		st = store.NewStore(pool)
	} else {
		logger.Warnf(ctx, "no database configured, shared-link accesses will not be persisted")
	}

	svc, err := api.NewAPIService(st)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	addr := viper.GetString(constants.ViperListenAddr)
	logger.Infof(ctx, "listening on %s", addr)
	svc.Serve(addr)
}

func initConfig() {
	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperBaseURL, "https://dashboard.opsgain.local")
	viper.SetDefault(constants.ViperDataFingerprint, "portsec_2026_v1")
	viper.SetDefault(constants.ViperDataDir, "data/real")
	viper.SetDefault(constants.ViperUseRealData, false)

	viper.SetDefault(constants.ViperMonthlyFixed, 8000)
	viper.SetDefault(constants.ViperCommissionRate, 0.12)
	viper.SetDefault(constants.ViperHourlyCost, 25)
	viper.SetDefault(constants.ViperErrorCost, 150)
	viper.SetDefault(constants.ViperBaselineDuration, 58)
	viper.SetDefault(constants.ViperBaselineErrRate, 0.032)
	viper.SetDefault(constants.ViperWorkingDays, 22)
	viper.SetDefault(constants.ViperFuelSaving, 1.5)
	viper.SetDefault(constants.ViperMaintenanceCost, 500)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("opsgain")
	viper.AutomaticEnv()
}
