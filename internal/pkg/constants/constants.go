package constants

import "net/http"

// Viper configuration keys.
const (
	ViperSecretKey        = "auth.secret"
	ViperListenAddr       = "server.addr"
	ViperBaseURL          = "share.base_url"
	ViperDataFingerprint  = "data.fingerprint"
	ViperDataDir          = "data.dir"
	ViperUseRealData      = "data.use_real"
	ViperDatabaseURL      = "database.url"
	ViperMonthlyFixed     = "finance.monthly_fixed"
	ViperCommissionRate   = "finance.commission_rate"
	ViperHourlyCost       = "finance.hourly_cost"
	ViperErrorCost        = "finance.error_cost"
	ViperBaselineDuration = "finance.baseline_duration"
	ViperBaselineErrRate  = "finance.baseline_error_rate"
	ViperWorkingDays      = "finance.working_days"
	ViperFuelSaving       = "finance.fuel_saving_per_truck"
	ViperMaintenanceCost  = "finance.maintenance_alert_cost"
)

const (
	CookieKeySecretToken = "secret_token"
)

type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string { return e.msg }

func (e *CodedError) Code() int { return e.code }

var (
	ErrUnauthorized   = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrDBNotFound     = NewCodedError(http.StatusNotFound, "not found")
	ErrDatasetMissing = NewCodedError(http.StatusFailedDependency, "period dataset files are missing")
	ErrInvalidPeriod  = NewCodedError(http.StatusBadRequest, "invalid period selection")
)
