package catalog

import (
	"time"

	"flowpilot/internal/model"
)

var weekLabels = [7]string{"M", "T", "W", "T", "F", "S", "S"}

// Week returns the Monday-started week containing now, with single-letter
// day labels and the Today flag set on now's entry. Completed comes from the
// stats pipeline and stays false on a fresh profile.
func Week(now time.Time) []model.WeekDay {
	// time.Weekday has Sunday=0; shift so Monday=0.
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)

	out := make([]model.WeekDay, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		out[i] = model.WeekDay{
			Day:   weekLabels[i],
			Date:  d.Day(),
			Today: i == offset,
		}
	}
	return out
}

// Encouragement picks the greeting line by hour of day.
func Encouragement(now time.Time) string {
	switch h := now.Hour(); {
	case h < 10:
		return "Great start to your day!"
	case h < 12:
		return "Keep the momentum going!"
	case h < 17:
		return "You're doing amazing!"
	default:
		return "Finish strong today!"
	}
}
