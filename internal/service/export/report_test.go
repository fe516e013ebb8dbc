package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/opsgain/portops/internal/domain"
	"github.com/opsgain/portops/internal/service/finance"
)

func reportFixture(t *testing.T) (*domain.PeriodDataset, *domain.FinancialMetrics) {
	t.Helper()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	data := &domain.PeriodDataset{
		Selection: domain.NewPeriodSelection("Test", start, start.AddDate(0, 0, 1)),
		Daily: []domain.DailyActivity{
			{Date: start, Operations: 100, AvgDuration: 45, Urgent: 3, Errors: 2},
			{Date: start.AddDate(0, 0, 1), Operations: 110, AvgDuration: 44, Urgent: 2, Errors: 3},
		},
		Equipment: []domain.EquipmentStat{
			{Equipment: "TRACTOR_01", Operations: 500, Errors: 12, AvgDuration: 45.2},
		},
		Hourly: []domain.HourlyBucket{{Hour: 8, Operations: 20}},
		Recent: []domain.RecentOperation{
			{
				Timestamp: time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC),
				Type:      domain.OperationLoading,
				Zone:      domain.ZoneQuay1,
				Equipment: "TRACTOR_01",
				Duration:  22.5,
				Urgent:    true,
			},
		},
	}

	params := domain.FinancialParameters{
		MonthlyFixed:         8000,
		CommissionRate:       0.12,
		HourlyCost:           25,
		ErrorCost:            150,
		BaselineDuration:     58,
		BaselineErrorRate:    0.032,
		WorkingDays:          22,
		FuelSavingPerTruck:   1.5,
		MaintenanceAlertCost: 500,
	}

	return data, finance.NewCalculator("portsec_2026_v1").Calculate(data, params)
}

func TestWriteReportSections(t *testing.T) {
	data, metrics := reportFixture(t)

	var buf bytes.Buffer
	if err := WriteReport(&buf, data, metrics); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	out := buf.String()
	for _, title := range []string{"Summary", "Daily activity", "Equipment", "Recent operations", "Gains breakdown"} {
		if !strings.Contains(out, title) {
			t.Errorf("report missing %q section", title)
		}
	}

	if !strings.Contains(out, metrics.VerificationHash) {
		t.Error("report missing verification hash")
	}
	if !strings.Contains(out, "TRACTOR_01") {
		t.Error("report missing equipment detail")
	}
}

func TestWriteReportParses(t *testing.T) {
	data, metrics := reportFixture(t)

	var buf bytes.Buffer
	if err := WriteReport(&buf, data, metrics); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("report is not valid csv: %v", err)
	}

	// summary title+header+row, 4 more titled sections with headers,
	// 2 daily rows, 1 equipment row, 1 recent row, 4 breakdown rows
	if len(rows) < 19 {
		t.Errorf("report has %d rows, want at least 19", len(rows))
	}

	var breakdownRows int
	inBreakdown := false
	for _, row := range rows {
		if len(row) > 0 && row[0] == "Gains breakdown" {
			inBreakdown = true
			continue
		}
		if inBreakdown && len(row) == 3 && row[0] != "category" {
			breakdownRows++
		}
	}
	if breakdownRows != 4 {
		t.Errorf("breakdown rows = %d, want 4", breakdownRows)
	}
}
