package seed

import (
	"time"

	"workplan-dashboard/internal/model"
)

// Engagement window covered by the timeline.
var (
	EngagementStart = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	EngagementEnd   = time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)
)

// TimelineWeeks cuts the engagement window into consecutive 7-day weeks.
// The last week is truncated at the end date, so the window yields
// fifteen weeks with week 15 running Dec 8 through Dec 12.
func TimelineWeeks() []model.TimelineWeek {
	now := time.Now()
	var weeks []model.TimelineWeek

	week := 1
	for cur := EngagementStart; !cur.After(EngagementEnd); cur = cur.AddDate(0, 0, 7) {
		end := cur.AddDate(0, 0, 6)
		if end.After(EngagementEnd) {
			end = EngagementEnd
		}
		weeks = append(weeks, model.TimelineWeek{
			WeekNumber:    week,
			StartDate:     cur,
			EndDate:       end,
			Month:         cur.Format("January 2006"),
			AssignedTasks: []string{},
			CreatedAt:     now,
		})
		week++
	}
	return weeks
}
