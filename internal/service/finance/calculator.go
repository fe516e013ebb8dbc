package finance

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"

	"github.com/opsgain/portops/internal/domain"
	"github.com/opsgain/portops/internal/pkg/constants"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	// maintenanceErrorThreshold is the canonical per-equipment error count
	// above which a maintenance alert is counted.
	maintenanceErrorThreshold = 10

	// Truck-equivalent proxy: a capped share of average daily operations.
	truckOpsRatio   = 0.3
	maxTrucksPerDay = 500

	minutesPerHour = 60

	displayPrecision = 2
	hashHexLength    = 16
)

// Breakdown category names.
const (
	GainTime        = "time_gain"
	GainErrors      = "error_gain"
	GainMaintenance = "maintenance_gain"
	GainFuel        = "fuel_gain"
)

// Calculator derives financial metrics from a period dataset. Stateless:
// every invocation recomputes the full result from its two inputs only.
type Calculator struct {
	fingerprint string
}

func NewCalculator(fingerprint string) *Calculator {
	return &Calculator{fingerprint: fingerprint}
}

// DefaultParameters returns the configured financial parameters.
func DefaultParameters() domain.FinancialParameters {
	return domain.FinancialParameters{
		MonthlyFixed:         viper.GetFloat64(constants.ViperMonthlyFixed),
		CommissionRate:       viper.GetFloat64(constants.ViperCommissionRate),
		HourlyCost:           viper.GetFloat64(constants.ViperHourlyCost),
		ErrorCost:            viper.GetFloat64(constants.ViperErrorCost),
		BaselineDuration:     viper.GetFloat64(constants.ViperBaselineDuration),
		BaselineErrorRate:    viper.GetFloat64(constants.ViperBaselineErrRate),
		WorkingDays:          viper.GetInt(constants.ViperWorkingDays),
		FuelSavingPerTruck:   viper.GetFloat64(constants.ViperFuelSaving),
		MaintenanceAlertCost: viper.GetFloat64(constants.ViperMaintenanceCost),
	}
}

// Calculate produces the complete metrics for one dataset. An empty dataset
// yields a zeroed result carrying only the period label; it never fails.
func (c *Calculator) Calculate(data *domain.PeriodDataset, params domain.FinancialParameters) *domain.FinancialMetrics {
	if data.IsEmpty() {
		return emptyMetrics(data.Selection.Label)
	}

	// 1. Baseline aggregation.
	totalDays := len(data.Daily)
	totalOps := 0
	totalErrors := 0
	weightedDuration := 0.0
	plainDuration := 0.0
	for _, day := range data.Daily {
		totalOps += day.Operations
		totalErrors += day.Errors
		weightedDuration += day.AvgDuration * float64(day.Operations)
		plainDuration += day.AvgDuration
	}

	avgDailyOps := float64(totalOps) / float64(totalDays)

	var avgDuration float64
	if totalOps > 0 {
		avgDuration = weightedDuration / float64(totalOps)
	} else {
		// all days report zero operations, fall back to an unweighted mean
		avgDuration = plainDuration / float64(totalDays)
	}

	var errorRate float64
	if totalOps > 0 {
		errorRate = float64(totalErrors) / float64(totalOps)
	}

	// 2. Time gain.
	timeSaved := math.Max(0, params.BaselineDuration-avgDuration)
	timeGainPeriod := timeSaved * float64(totalOps) * (params.HourlyCost / minutesPerHour)
	timeGainDaily := timeGainPeriod / float64(totalDays)

	// 3. Error gain.
	errorsAvoided := math.Max(0, (params.BaselineErrorRate-errorRate)*float64(totalOps))
	errorGainPeriod := errorsAvoided * params.ErrorCost
	errorGainDaily := errorGainPeriod / float64(totalDays)

	// 4. Maintenance gain.
	maintenanceAlerts := 0
	for _, eq := range data.Equipment {
		if eq.Errors > maintenanceErrorThreshold {
			maintenanceAlerts++
		}
	}
	maintenanceGainPeriod := float64(maintenanceAlerts) * params.MaintenanceAlertCost
	maintenanceGainDaily := maintenanceGainPeriod / float64(totalDays)

	// 5. Fuel gain.
	trucksPerDay := math.Min(maxTrucksPerDay, avgDailyOps*truckOpsRatio)
	fuelGainDaily := trucksPerDay * params.FuelSavingPerTruck
	fuelGainPeriod := fuelGainDaily * float64(totalDays)

	// 6. Totals. The period total is derived from the rounded combined
	// daily rate, not from summing the four per-category period figures, so
	// the headline stays consistent with what a reader can recompute from
	// the displayed daily total.
	dailyGains := round(timeGainDaily + errorGainDaily + maintenanceGainDaily + fuelGainDaily)
	periodGains := round(dailyGains * float64(totalDays))

	// 7. Commission.
	var dailyFixed float64
	if params.WorkingDays > 0 {
		dailyFixed = params.MonthlyFixed / float64(params.WorkingDays)
	}
	dailyCommission := round(dailyFixed + dailyGains*params.CommissionRate)
	monthlyProjection := round(dailyGains * float64(params.WorkingDays))
	monthlyCommission := round(params.MonthlyFixed + monthlyProjection*params.CommissionRate)

	// 8. Verification hash, over post-rounding figures so a reader can
	// recompute it from the displayed values.
	hash := c.verificationHash(data.Selection.Label, totalOps, periodGains, dailyCommission)

	breakdown := map[string]domain.GainFigure{
		GainTime:        {Daily: round(timeGainDaily), Period: round(timeGainPeriod)},
		GainErrors:      {Daily: round(errorGainDaily), Period: round(errorGainPeriod)},
		GainMaintenance: {Daily: round(maintenanceGainDaily), Period: round(maintenanceGainPeriod)},
		GainFuel:        {Daily: round(fuelGainDaily), Period: round(fuelGainPeriod)},
	}

	metrics := map[string]float64{
		"avg_daily_operations": round(avgDailyOps),
		"avg_duration":         round(avgDuration),
		"error_rate_pct":       round(errorRate * 100),
		"time_saved_minutes":   round(timeSaved),
		"errors_avoided":       round(errorsAvoided),
		"maintenance_alerts":   float64(maintenanceAlerts),
		"trucks_per_day":       round(trucksPerDay),
	}

	summary := domain.PeriodSummary{
		SelectedPeriod:     data.Selection.Label,
		StartDate:          data.Selection.Start.Format(domain.LabelDateFormat),
		EndDate:            data.Selection.End.Format(domain.LabelDateFormat),
		TotalDays:          totalDays,
		TotalOperations:    totalOps,
		AvgDailyOperations: round(avgDailyOps),
		AvgDuration:        round(avgDuration),
		TotalErrors:        totalErrors,
		ErrorRatePct:       round(errorRate * 100),
		PeriodGains:        periodGains,
	}

	return &domain.FinancialMetrics{
		DailyGains:        dailyGains,
		MonthlyProjection: monthlyProjection,
		PeriodGains:       periodGains,
		CommissionToday:   dailyCommission,
		CommissionMonthly: monthlyCommission,
		Breakdown:         breakdown,
		VerificationHash:  hash,
		PeriodSummary:     summary,
		Metrics:           metrics,
	}
}

func (c *Calculator) verificationHash(label string, totalOps int, periodGains, dailyCommission float64) string {
	canonical := fmt.Sprintf("%s:%d:%s:%s:%s",
		label,
		totalOps,
		strconv.FormatFloat(periodGains, 'f', displayPrecision, 64),
		strconv.FormatFloat(dailyCommission, 'f', displayPrecision, 64),
		c.fingerprint,
	)

	digest := sha256.Sum256([]byte(canonical))
	return "0x" + hex.EncodeToString(digest[:])[:hashHexLength]
}

func emptyMetrics(label string) *domain.FinancialMetrics {
	return &domain.FinancialMetrics{
		Breakdown: map[string]domain.GainFigure{},
		Metrics:   map[string]float64{},
		PeriodSummary: domain.PeriodSummary{
			SelectedPeriod: label,
		},
	}
}

func round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(displayPrecision).InexactFloat64()
}
