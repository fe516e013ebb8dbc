package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opsgain/portops/internal/pkg/constants"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func writeTestDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeTestFile(t, dir, dailyFile, `date,operations,avg_duration,urgent,errors
2026-01-02,110,44.0,2,3
2026-01-01,100,45.5,3,2
not-a-date,50,40.0,1,1
2026-02-01,90,42.0,1,1
`)
	writeTestFile(t, dir, equipmentFile, `equipment,operations,errors,avg_duration
TRACTOR_01,500,12,45.2
CRANE_01,450,8,51.0
BROKEN,oops,8,51.0
`)
	writeTestFile(t, dir, recentFile, `timestamp,type,zone,equipment,duration,urgent,error
2026-01-02 10:30:00,LOADING,QUAY_1,TRACTOR_01,22.5,0,0
2026-01-02 10:45:00,UNLOADING,QUAY_2_ROAD,CRANE_01,18.0,1,0
2026-01-01 14:05:00,INSPECTION,CUSTOMS_CONTROL,TRACTOR_01,31.0,0,1
garbage,LOADING,QUAY_1,TRACTOR_01,22.5,0,0
2026-03-01 09:00:00,LOADING,QUAY_1,TRACTOR_01,22.5,0,0
`)

	return dir
}

func TestRepositoryLoad(t *testing.T) {
	repo := NewRepository(writeTestDataDir(t))

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	data, err := repo.Load(context.Background(), start, end)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// bad-date and out-of-range rows dropped, remainder sorted ascending
	if got := len(data.Daily); got != 2 {
		t.Fatalf("daily records = %d, want 2", got)
	}
	if !data.Daily[0].Date.Before(data.Daily[1].Date) {
		t.Error("daily records not sorted by date")
	}
	if data.Daily[0].Operations != 100 {
		t.Errorf("daily[0].Operations = %d, want 100", data.Daily[0].Operations)
	}

	// unparseable numeric row dropped
	if got := len(data.Equipment); got != 2 {
		t.Errorf("equipment records = %d, want 2", got)
	}

	// garbage timestamp and out-of-range rows dropped, most recent first
	if got := len(data.Recent); got != 3 {
		t.Fatalf("recent records = %d, want 3", got)
	}
	if !data.Recent[0].Timestamp.After(data.Recent[1].Timestamp) {
		t.Error("recent operations not sorted most-recent-first")
	}
	if !data.Recent[0].Urgent {
		t.Error("urgent flag not parsed")
	}

	// hourly derived by grouping recent operations by hour
	wantHours := map[int]int{10: 2, 14: 1}
	if got := len(data.Hourly); got != len(wantHours) {
		t.Fatalf("hourly buckets = %d, want %d", got, len(wantHours))
	}
	for _, bucket := range data.Hourly {
		if wantHours[bucket.Hour] != bucket.Operations {
			t.Errorf("hour %d operations = %d, want %d", bucket.Hour, bucket.Operations, wantHours[bucket.Hour])
		}
	}
}

func TestRepositoryMissingFile(t *testing.T) {
	dir := writeTestDataDir(t)
	if err := os.Remove(filepath.Join(dir, equipmentFile)); err != nil {
		t.Fatal(err)
	}

	repo := NewRepository(dir)
	_, err := repo.Load(context.Background(),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))

	if !errors.Is(err, constants.ErrDatasetMissing) {
		t.Fatalf("err = %v, want ErrDatasetMissing", err)
	}
}

func TestRepositoryEmptyRange(t *testing.T) {
	repo := NewRepository(writeTestDataDir(t))

	data, err := repo.Load(context.Background(),
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(data.Daily) != 0 || len(data.Recent) != 0 || len(data.Hourly) != 0 {
		t.Errorf("expected empty period, got %d daily / %d recent / %d hourly",
			len(data.Daily), len(data.Recent), len(data.Hourly))
	}
	if !data.IsEmpty() {
		t.Error("dataset with no daily records should report empty")
	}
}

func TestRepositoryNormalizesTimezones(t *testing.T) {
	repo := NewRepository(writeTestDataDir(t))

	zone := time.FixedZone("UTC+5", 5*3600)
	start := time.Date(2026, 1, 1, 23, 30, 0, 0, zone)
	end := time.Date(2026, 1, 31, 1, 0, 0, 0, zone)

	data, err := repo.Load(context.Background(), start, end)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := len(data.Daily); got != 2 {
		t.Errorf("daily records = %d, want 2 after day normalization", got)
	}
}
