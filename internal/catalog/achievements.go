package catalog

import "flowpilot/internal/model"

// FreshStats is the starting stats record for a new profile. Everything is
// zero until the history pipeline lands; Evaluate already consumes the full
// record so wiring real numbers in later is a one-line change at the call
// site.
func FreshStats() model.UserStats {
	return model.UserStats{}
}

const (
	focusMasterGoal  = 50
	mindfulGoal      = 30
	streakLegendGoal = 30
	earlyBirdGoal    = 5
	consistencyGoal  = 7
)

// Evaluate derives the achievement list from a stats record. Unlock rules and
// progress counters are fixed; only the input varies.
func Evaluate(stats model.UserStats) []model.Achievement {
	focusProgress := stats.FocusTasks
	mindfulProgress := stats.WellnessActivities
	streakProgress := stats.CurrentStreak

	return []model.Achievement{
		{
			ID:          "1",
			Title:       "Early Bird",
			Description: "Complete morning planning 5 days in a row",
			Icon:        model.IconStar,
			Unlocked:    stats.EarlyPlanningDays >= earlyBirdGoal,
		},
		{
			ID:          "2",
			Title:       "Consistency King",
			Description: "Maintain a 7-day streak",
			Icon:        model.IconTrophy,
			Unlocked:    stats.CurrentStreak >= consistencyGoal,
		},
		{
			ID:          "3",
			Title:       "Focus Master",
			Description: "Complete 50 focused work sessions",
			Icon:        model.IconTarget,
			Unlocked:    stats.FocusTasks >= focusMasterGoal,
			Progress:    &focusProgress,
			MaxProgress: intPtr(focusMasterGoal),
		},
		{
			ID:          "4",
			Title:       "Mindful Warrior",
			Description: "Complete 30 wellness activities",
			Icon:        model.IconHeart,
			Unlocked:    stats.WellnessActivities >= mindfulGoal,
			Progress:    &mindfulProgress,
			MaxProgress: intPtr(mindfulGoal),
		},
		{
			ID:          "5",
			Title:       "Streak Legend",
			Description: "Achieve a 30-day streak",
			Icon:        model.IconAward,
			Unlocked:    stats.BestStreak >= streakLegendGoal,
			Progress:    &streakProgress,
			MaxProgress: intPtr(streakLegendGoal),
		},
	}
}

func intPtr(v int) *int { return &v }
