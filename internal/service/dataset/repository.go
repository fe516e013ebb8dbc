package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/opsgain/portops/internal/domain"
	"github.com/opsgain/portops/internal/pkg/constants"
	"github.com/opsgain/portops/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const (
	dailyFile     = "daily_operations.csv"
	equipmentFile = "equipment_performance.csv"
	recentFile    = "recent_operations.csv"

	timestampFormat = "2006-01-02 15:04:05"
)

// Repository loads period datasets from persisted tabular files instead of
// synthesizing them. A missing backing file fails the load; substituting
// mock data silently would produce misleading financial figures.
type Repository struct {
	dir string
}

func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

func (r *Repository) Load(ctx context.Context, start, end time.Time) (*domain.PeriodDataset, error) {
	// Day precision on both bounds; mixing zone-aware and naive dates here
	// silently filters everything out.
	start = domain.Day(start)
	end = domain.Day(end)

	var (
		daily     []domain.DailyActivity
		equipment []domain.EquipmentStat
		recent    []domain.RecentOperation
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		rows, err := r.readFile(egCtx, dailyFile)
		if err != nil {
			return err
		}
		daily = parseDaily(rows, start, end)
		return nil
	})
	eg.Go(func() error {
		rows, err := r.readFile(egCtx, equipmentFile)
		if err != nil {
			return err
		}
		equipment = parseEquipment(rows)
		return nil
	})
	eg.Go(func() error {
		rows, err := r.readFile(egCtx, recentFile)
		if err != nil {
			return err
		}
		recent = parseRecent(rows, start, end)
		return nil
	})

	if err := eg.Wait(); err != nil {
		logger.Errorf(ctx, "repository load: %s", err.Error())
		return nil, err
	}

	return &domain.PeriodDataset{
		Selection: domain.NewPeriodSelection("", start, end),
		Daily:     daily,
		Equipment: equipment,
		Hourly:    hourlyFromRecent(recent),
		Recent:    recent,
	}, nil
}

func (r *Repository) readFile(_ context.Context, name string) ([][]string, error) {
	path := filepath.Join(r.dir, name)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, constants.ErrDatasetMissing)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// drop header
	return rows[1:], nil
}

// Columns: date, operations, avg_duration, urgent, errors.
func parseDaily(rows [][]string, start, end time.Time) []domain.DailyActivity {
	daily := make([]domain.DailyActivity, 0, len(rows))
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}

		date, err := time.Parse(domain.DateFormat, row[0])
		if err != nil {
			// bad rows are dropped, never propagated
			continue
		}
		date = domain.Day(date)
		if date.Before(start) || date.After(end) {
			continue
		}

		ops, err1 := strconv.Atoi(row[1])
		duration, err2 := strconv.ParseFloat(row[2], 64)
		urgent, err3 := strconv.Atoi(row[3])
		errCount, err4 := strconv.Atoi(row[4])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}

		daily = append(daily, domain.DailyActivity{
			Date:        date,
			Operations:  ops,
			AvgDuration: duration,
			Urgent:      urgent,
			Errors:      errCount,
		})
	}

	sort.Slice(daily, func(i, j int) bool { return daily[i].Date.Before(daily[j].Date) })
	return daily
}

// Columns: equipment, operations, errors, avg_duration.
func parseEquipment(rows [][]string) []domain.EquipmentStat {
	equipment := make([]domain.EquipmentStat, 0, len(rows))
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}

		ops, err1 := strconv.Atoi(row[1])
		errCount, err2 := strconv.Atoi(row[2])
		duration, err3 := strconv.ParseFloat(row[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}

		equipment = append(equipment, domain.EquipmentStat{
			Equipment:   row[0],
			Operations:  ops,
			Errors:      errCount,
			AvgDuration: duration,
		})
	}

	return equipment
}

// Columns: timestamp, type, zone, equipment, duration, urgent, error.
func parseRecent(rows [][]string, start, end time.Time) []domain.RecentOperation {
	recent := make([]domain.RecentOperation, 0, len(rows))
	for _, row := range rows {
		if len(row) < 7 {
			continue
		}

		ts, err := time.Parse(timestampFormat, row[0])
		if err != nil {
			continue
		}
		if domain.Day(ts).Before(start) || domain.Day(ts).After(end) {
			continue
		}

		duration, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			continue
		}

		recent = append(recent, domain.RecentOperation{
			Timestamp: ts,
			Type:      domain.OperationType(row[1]),
			Zone:      domain.Zone(row[2]),
			Equipment: row[3],
			Duration:  duration,
			Urgent:    row[5] == "1" || row[5] == "true",
			Error:     row[6] == "1" || row[6] == "true",
		})
	}

	sort.Slice(recent, func(i, j int) bool { return recent[i].Timestamp.After(recent[j].Timestamp) })
	return recent
}

// hourlyFromRecent derives the hourly distribution when no direct hourly
// source exists, by grouping recent operations by hour of day.
func hourlyFromRecent(recent []domain.RecentOperation) []domain.HourlyBucket {
	counts := make(map[domain.Hour]int)
	for _, op := range recent {
		counts[op.Timestamp.Hour()]++
	}

	hourly := make([]domain.HourlyBucket, 0, len(counts))
	for hour, n := range counts {
		hourly = append(hourly, domain.HourlyBucket{Hour: hour, Operations: n})
	}

	sort.Slice(hourly, func(i, j int) bool { return hourly[i].Hour < hourly[j].Hour })
	return hourly
}
