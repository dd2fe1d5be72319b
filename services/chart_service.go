package services

import (
	"math"
	"time"

	"github.com/finnmprice/caffeine-counter/config"
	"github.com/finnmprice/caffeine-counter/models"

	"gorm.io/gorm"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// ChartData is the caffeine-chart payload: one label and one summed value
// per bucket, always the same length, zero-filled for quiet buckets.
type ChartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type chartStep int

const (
	stepDay chartStep = iota
	stepMonth
	stepYear
)

type ChartService struct{ db *gorm.DB }

func NewChartService(db *gorm.DB) *ChartService { return &ChartService{db: db} }

// Convenience constructor using the global connection, for controllers
// that build services per request.
func DefaultChartService() *ChartService { return NewChartService(config.DB) }

// CaffeineChart loads the entries and buckets them for the given period.
// The result set is small (a personal tracker), so aggregation happens
// in memory rather than in SQL.
func (s *ChartService) CaffeineChart(period Period) (*ChartData, error) {
	var entries []models.CaffeineEntry
	if err := s.db.Order("timestamp ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return BuildChart(period, time.Now(), entries)
}

// BuildChart maps a period selector, the current instant and the entry set
// onto an ordered (label, value) axis.
//
// Bucket granularity:
//   - week:  last 7 days, daily buckets
//   - month: last 30 days, daily buckets
//   - year:  last 12 calendar months, monthly buckets
//   - all:   daily/monthly/yearly depending on how far apart the earliest
//     and latest entries are (≤90 days, ≤540 days, beyond)
//
// Every bucket between the axis start and end appears exactly once, with 0
// for buckets no entry falls into.
func BuildChart(period Period, now time.Time, entries []models.CaffeineEntry) (*ChartData, error) {
	var (
		step        chartStep
		start, end  time.Time
		labelFormat string
	)

	switch period {
	case PeriodWeek:
		step = stepDay
		end = dayStart(now)
		start = end.AddDate(0, 0, -6)
		labelFormat = "Jan 2"
	case PeriodMonth:
		step = stepDay
		end = dayStart(now)
		start = end.AddDate(0, 0, -29)
		labelFormat = "Jan 2"
	case PeriodYear:
		// Last 12 calendar months. A 13-month axis would repeat the
		// current month's label, so the window starts one month later
		// than a naive now-1y truncation.
		step = stepMonth
		end = monthStart(now)
		start = end.AddDate(0, -11, 0)
		labelFormat = "Jan"
	case PeriodAll:
		if len(entries) == 0 {
			return &ChartData{Labels: []string{}, Values: []float64{}}, nil
		}
		earliest, latest := entryBounds(entries)
		span := daysBetween(dayStart(earliest), dayStart(latest)) + 1
		switch {
		case span <= 90:
			step = stepDay
			start = dayStart(earliest)
			end = dayStart(latest)
			labelFormat = "Jan 2"
		case span <= 540:
			step = stepMonth
			start = monthStart(earliest)
			end = monthStart(latest)
			labelFormat = "Jan 2006"
		default:
			step = stepYear
			start = yearStart(earliest)
			end = yearStart(latest)
			labelFormat = "2006"
		}
	default:
		return nil, ErrUnknownPeriod
	}

	// Accumulate per-bucket sums keyed by the truncated timestamp.
	sums := make(map[string]float64)
	for _, e := range entries {
		if e.Timestamp.Before(start) || e.Timestamp.After(now) {
			continue
		}
		sums[bucketKey(e.Timestamp, step)] += e.CaffeineMg
	}

	// Walk the axis one step at a time so quiet buckets still appear.
	data := &ChartData{Labels: []string{}, Values: []float64{}}
	for d := start; !d.After(end); d = nextBucket(d, step) {
		data.Labels = append(data.Labels, d.Format(labelFormat))
		data.Values = append(data.Values, sums[bucketKey(d, step)])
	}
	return data, nil
}

func bucketKey(t time.Time, step chartStep) string {
	switch step {
	case stepMonth:
		return t.Format("2006-01")
	case stepYear:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}

// nextBucket advances one step. Starts are aligned (midnight, first of
// month, Jan 1), so AddDate never drifts across variable month lengths.
func nextBucket(t time.Time, step chartStep) time.Time {
	switch step {
	case stepMonth:
		return t.AddDate(0, 1, 0)
	case stepYear:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

func entryBounds(entries []models.CaffeineEntry) (earliest, latest time.Time) {
	earliest, latest = entries[0].Timestamp, entries[0].Timestamp
	for _, e := range entries[1:] {
		if e.Timestamp.Before(earliest) {
			earliest = e.Timestamp
		}
		if e.Timestamp.After(latest) {
			latest = e.Timestamp
		}
	}
	return earliest, latest
}

// daysBetween counts calendar days from a to b, both at local midnight.
// Rounding absorbs the odd-length days DST transitions produce.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func yearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}
