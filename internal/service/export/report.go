package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/opsgain/portops/internal/domain"
	"github.com/opsgain/portops/internal/service/finance"
)

// WriteReport streams the multi-section report: summary, daily activity,
// equipment detail, recent operations and the gains breakdown. Pure
// serialization of already-computed results.
func WriteReport(w io.Writer, data *domain.PeriodDataset, metrics *domain.FinancialMetrics) error {
	cw := csv.NewWriter(w)

	sections := []func(*csv.Writer, *domain.PeriodDataset, *domain.FinancialMetrics) error{
		writeSummary,
		writeDaily,
		writeEquipment,
		writeRecent,
		writeBreakdown,
	}
	for i, section := range sections {
		if i > 0 {
			if err := cw.Write([]string{}); err != nil {
				return err
			}
		}
		if err := section(cw, data, metrics); err != nil {
			return fmt.Errorf("write report section: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeSummary(cw *csv.Writer, data *domain.PeriodDataset, metrics *domain.FinancialMetrics) error {
	s := metrics.PeriodSummary
	rows := [][]string{
		{"Summary"},
		{"period", "start", "end", "days", "total_operations", "period_gains", "monthly_commission", "verification_hash"},
		{
			s.SelectedPeriod,
			data.Selection.Start.Format(domain.DateFormat),
			data.Selection.End.Format(domain.DateFormat),
			strconv.Itoa(s.TotalDays),
			strconv.Itoa(s.TotalOperations),
			formatMoney(metrics.PeriodGains),
			formatMoney(metrics.CommissionMonthly),
			metrics.VerificationHash,
		},
	}
	return cw.WriteAll(rows)
}

func writeDaily(cw *csv.Writer, data *domain.PeriodDataset, _ *domain.FinancialMetrics) error {
	rows := [][]string{
		{"Daily activity"},
		{"date", "operations", "avg_duration", "urgent", "errors"},
	}
	for _, day := range data.Daily {
		rows = append(rows, []string{
			day.Date.Format(domain.DateFormat),
			strconv.Itoa(day.Operations),
			formatMoney(day.AvgDuration),
			strconv.Itoa(day.Urgent),
			strconv.Itoa(day.Errors),
		})
	}
	return cw.WriteAll(rows)
}

func writeEquipment(cw *csv.Writer, data *domain.PeriodDataset, _ *domain.FinancialMetrics) error {
	rows := [][]string{
		{"Equipment"},
		{"equipment", "operations", "errors", "avg_duration", "error_rate"},
	}
	for _, eq := range data.Equipment {
		rows = append(rows, []string{
			eq.Equipment,
			strconv.Itoa(eq.Operations),
			strconv.Itoa(eq.Errors),
			formatMoney(eq.AvgDuration),
			strconv.FormatFloat(eq.ErrorRate(), 'f', 4, 64),
		})
	}
	return cw.WriteAll(rows)
}

func writeRecent(cw *csv.Writer, data *domain.PeriodDataset, _ *domain.FinancialMetrics) error {
	rows := [][]string{
		{"Recent operations"},
		{"timestamp", "type", "zone", "equipment", "duration_minutes", "urgent", "error"},
	}
	for _, op := range data.Recent {
		rows = append(rows, []string{
			op.Timestamp.Format("2006-01-02 15:04:05"),
			string(op.Type),
			string(op.Zone),
			op.Equipment,
			formatMoney(op.Duration),
			formatBool(op.Urgent),
			formatBool(op.Error),
		})
	}
	return cw.WriteAll(rows)
}

func writeBreakdown(cw *csv.Writer, _ *domain.PeriodDataset, metrics *domain.FinancialMetrics) error {
	rows := [][]string{
		{"Gains breakdown"},
		{"category", "daily", "period"},
	}
	for _, category := range []string{finance.GainTime, finance.GainErrors, finance.GainMaintenance, finance.GainFuel} {
		figure := metrics.Breakdown[category]
		rows = append(rows, []string{
			category,
			formatMoney(figure.Daily),
			formatMoney(figure.Period),
		})
	}
	return cw.WriteAll(rows)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
