package dataset

import (
	"crypto/md5"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"time"

	"github.com/opsgain/portops/internal/domain"
)

// Generation bounds. The downstream verification hash depends on exact
// reproducibility, so every numeric range lives here rather than inline.
const (
	dailyOpsMin      = 128
	dailyOpsMax      = 500
	dailyDurationRef = 40.0
	dailyDurationLo  = -8.0
	dailyDurationHi  = 12.0
	dailyUrgentMin   = 2
	dailyUrgentMax   = 15
	dailyErrorsMin   = 2
	dailyErrorsMax   = 10

	equipOpsMin      = 200
	equipOpsMax      = 1000
	equipErrorsMin   = 5
	equipErrorsMax   = 20
	equipDurationMin = 35.0
	equipDurationMax = 60.0

	hourlyFirstHour = 6
	hourlyLastHour  = 21
	hourlyOpsMin    = 10
	hourlyOpsMax    = 50

	recentCount         = 20
	recentBaseOffsetMin = 5
	recentStepMin       = 6

	seedModulus = 100_000_000
)

var equipmentRoster = []string{
	"TRACTOR_01", "TRACTOR_02", "TRACTOR_03",
	"FORKLIFT_01", "FORKLIFT_02", "CRANE_01",
}

var operationTypes = []domain.OperationType{
	domain.OperationLoading, domain.OperationUnloading, domain.OperationInspect,
}

var zones = []domain.Zone{
	domain.ZoneQuay1, domain.ZoneQuay2, domain.ZoneStorage, domain.ZoneCustoms,
}

// Generator synthesizes period datasets as a pure function of the data
// fingerprint and the date range. No external randomness is involved.
type Generator struct {
	fingerprint string
	now         func() time.Time
}

func NewGenerator(fingerprint string) *Generator {
	return &Generator{fingerprint: fingerprint, now: time.Now}
}

// seed derives an independent deterministic seed for one sub-dataset by
// hashing fingerprint, canonical range and tag, reduced to a bounded range.
func (g *Generator) seed(tag, periodKey string) int64 {
	digest := md5.Sum([]byte(fmt.Sprintf("%s_%s_%s", g.fingerprint, periodKey, tag)))

	n := new(big.Int).SetBytes(digest[:])
	return n.Mod(n, big.NewInt(seedModulus)).Int64()
}

// Generate builds the full dataset for [start, end]. With useWallClock set,
// recent operations anchor to the current time; otherwise they anchor to
// noon on the end date so every viewer of a shared link sees identical
// timestamps.
func (g *Generator) Generate(start, end time.Time, useWallClock bool) *domain.PeriodDataset {
	selection := domain.NewPeriodSelection("", start, end)
	start, end = selection.Start, selection.End

	periodKey := fmt.Sprintf("%s_%s", start.Format("20060102"), end.Format("20060102"))

	rngDaily := rand.New(rand.NewSource(g.seed("daily", periodKey)))
	rngEquip := rand.New(rand.NewSource(g.seed("equipment", periodKey)))
	rngHourly := rand.New(rand.NewSource(g.seed("hourly", periodKey)))

	var anchor time.Time
	if useWallClock {
		anchor = g.now()
	} else {
		anchor = time.Date(end.Year(), end.Month(), end.Day(), 12, 0, 0, 0, time.UTC)
	}

	days := int(end.Sub(start).Hours()/24) + 1

	daily := make([]domain.DailyActivity, 0, days)
	for d := 0; d < days; d++ {
		daily = append(daily, domain.DailyActivity{
			Date:        start.AddDate(0, 0, d),
			Operations:  randInt(rngDaily, dailyOpsMin, dailyOpsMax),
			AvgDuration: dailyDurationRef + randFloat(rngDaily, dailyDurationLo, dailyDurationHi),
			Urgent:      randInt(rngDaily, dailyUrgentMin, dailyUrgentMax),
			Errors:      randInt(rngDaily, dailyErrorsMin, dailyErrorsMax),
		})
	}

	equipment := make([]domain.EquipmentStat, 0, len(equipmentRoster))
	for _, id := range equipmentRoster {
		equipment = append(equipment, domain.EquipmentStat{
			Equipment:   id,
			Operations:  randInt(rngEquip, equipOpsMin, equipOpsMax),
			Errors:      randInt(rngEquip, equipErrorsMin, equipErrorsMax),
			AvgDuration: randFloat(rngEquip, equipDurationMin, equipDurationMax),
		})
	}

	hourly := make([]domain.HourlyBucket, 0, hourlyLastHour-hourlyFirstHour+1)
	for h := hourlyFirstHour; h <= hourlyLastHour; h++ {
		hourly = append(hourly, domain.HourlyBucket{
			Hour:       h,
			Operations: randInt(rngHourly, hourlyOpsMin, hourlyOpsMax),
		})
	}

	recent := make([]domain.RecentOperation, 0, recentCount)
	for i := 0; i < recentCount; i++ {
		ts := anchor.Add(-time.Duration(recentBaseOffsetMin+i*recentStepMin) * time.Minute)
		recent = append(recent, domain.RecentOperation{
			Timestamp: ts.Truncate(time.Minute),
			Type:      operationTypes[i%len(operationTypes)],
			Zone:      zones[i%len(zones)],
			Equipment: equipmentRoster[i%len(equipmentRoster)],
			Duration:  15 + math.Mod(float64(i)*2.3, 45),
			Urgent:    i%7 == 0,
			Error:     i%10 == 0,
		})
	}

	return &domain.PeriodDataset{
		Selection: selection,
		Daily:     daily,
		Equipment: equipment,
		Hourly:    hourly,
		Recent:    recent,
	}
}

// randInt draws from [lo, hi] inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func randFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
