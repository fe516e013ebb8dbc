package domain

// FinancialParameters are the operator-adjustable constants of one
// calculation. Validation tags document the accepted ranges; values outside
// them are rejected at the API boundary, never inside the calculator.
type FinancialParameters struct {
	MonthlyFixed         float64 `json:"monthly_fixed" query:"monthly_fixed" validate:"gte=0"`
	CommissionRate       float64 `json:"commission_rate" query:"commission_rate" validate:"gte=0,lte=0.5"`
	HourlyCost           float64 `json:"hourly_cost" query:"hourly_cost" validate:"gte=0"`
	ErrorCost            float64 `json:"error_cost" query:"error_cost" validate:"gte=0"`
	BaselineDuration     float64 `json:"baseline_duration" query:"baseline_duration" validate:"gt=0"`
	BaselineErrorRate    float64 `json:"baseline_error_rate" query:"baseline_error_rate" validate:"gte=0,lte=1"`
	WorkingDays          int     `json:"working_days" query:"working_days" validate:"gte=20,lte=26"`
	FuelSavingPerTruck   float64 `json:"fuel_saving_per_truck" query:"fuel_saving_per_truck" validate:"gte=0"`
	MaintenanceAlertCost float64 `json:"maintenance_alert_cost" query:"maintenance_alert_cost" validate:"gte=0"`
}

// GainFigure is one breakdown category, daily and whole-period.
type GainFigure struct {
	Daily  float64 `json:"daily"`
	Period float64 `json:"period"`
}

// PeriodSummary is a denormalized, display-ready snapshot of the period.
// Redundant with the dataset and metrics on purpose, so exports are
// self-contained.
type PeriodSummary struct {
	SelectedPeriod     string  `json:"selected_period"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	TotalDays          int     `json:"total_days"`
	TotalOperations    int     `json:"total_operations"`
	AvgDailyOperations float64 `json:"avg_daily_operations"`
	AvgDuration        float64 `json:"avg_duration"`
	TotalErrors        int     `json:"total_errors"`
	ErrorRatePct       float64 `json:"error_rate"`
	PeriodGains        float64 `json:"period_gains"`
}

// FinancialMetrics is the complete calculator result. Recomputed fresh on
// every invocation; never partially updated.
type FinancialMetrics struct {
	DailyGains        float64               `json:"daily_gains"`
	MonthlyProjection float64               `json:"monthly_projection"`
	PeriodGains       float64               `json:"period_gains"`
	CommissionToday   float64               `json:"your_commission_today"`
	CommissionMonthly float64               `json:"your_commission_monthly"`
	Breakdown         map[string]GainFigure `json:"breakdown"`
	VerificationHash  string                `json:"verification_hash"`
	PeriodSummary     PeriodSummary         `json:"period_summary"`
	Metrics           map[string]float64    `json:"metrics"`
}
