package models

import "time"

// HealthStatus grades a week by its total pure alcohol.
type HealthStatus string

const (
	HealthLow      HealthStatus = "low"
	HealthModerate HealthStatus = "moderate"
	HealthHigh     HealthStatus = "high"
)

// Weekly pure alcohol thresholds in milliliters.
const (
	LowPureAlcoholLimit      = 100.0
	ModeratePureAlcoholLimit = 200.0
)

// HealthStatusFor grades a weekly pure alcohol total.
func HealthStatusFor(pureAlcohol float64) HealthStatus {
	switch {
	case pureAlcohol <= LowPureAlcoholLimit:
		return HealthLow
	case pureAlcohol <= ModeratePureAlcoholLimit:
		return HealthModerate
	default:
		return HealthHigh
	}
}

// WeeklySummary aggregates one owner's records for one week.
type WeeklySummary struct {
	OwnerID string `json:"owner_id"`

	WeekStart time.Time `json:"week_start"`

	// PerDay holds pure alcohol per day; index 0 is Sunday.
	PerDay [7]float64 `json:"per_day"`

	PureAlcohol float64 `json:"pure_alcohol"`

	Records int `json:"records"`

	Status HealthStatus `json:"status"`
}

// SummarizeWeek folds records into a summary. Records outside the week are
// ignored.
func SummarizeWeek(ownerID string, weekStart time.Time, records []AlcoholRecord) WeeklySummary {
	summary := WeeklySummary{OwnerID: ownerID, WeekStart: WeekStart(weekStart)}

	for _, rec := range records {
		if !rec.WeekStart.Equal(summary.WeekStart) || rec.DayOfWeek < 1 || rec.DayOfWeek > 7 {
			continue
		}
		pure := rec.PureAlcohol()
		summary.PerDay[rec.DayOfWeek-1] += pure
		summary.PureAlcohol += pure
		summary.Records++
	}

	summary.Status = HealthStatusFor(summary.PureAlcohol)
	return summary
}
