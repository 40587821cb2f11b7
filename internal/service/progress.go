package service

import "workplan-dashboard/internal/model"

// Progress summarizes the tasks of one category. Hours variance is
// actual minus estimated, reported as zero until any hours are logged.
type Progress struct {
	CompletionPercentage float64 `json:"completion_percentage"`
	AverageProgress      float64 `json:"average_progress"`
	EstimatedHours       int     `json:"estimated_hours"`
	ActualHours          int     `json:"actual_hours"`
	HoursVariance        int     `json:"hours_variance"`
}

// Summary is the project-wide rollup shown on the dashboard. Tasks that
// are neither completed nor in progress count as not started here,
// whatever their exact status.
type Summary struct {
	TotalTasks          int                 `json:"total_tasks"`
	CompletedTasks      int                 `json:"completed_tasks"`
	InProgressTasks     int                 `json:"in_progress_tasks"`
	NotStartedTasks     int                 `json:"not_started_tasks"`
	OverallCompletion   float64             `json:"overall_completion"`
	OverallProgress     float64             `json:"overall_progress"`
	TotalEstimatedHours int                 `json:"total_estimated_hours"`
	TotalActualHours    int                 `json:"total_actual_hours"`
	HoursVariance       int                 `json:"hours_variance"`
	Categories          map[string]Progress `json:"categories"`
	TimelineWeeks       int                 `json:"timeline_weeks"`
}

// CategoryProgress recomputes the metrics for one category from the
// tasks currently referencing it. Unknown or empty categories yield the
// zero value.
func (s *WorkplanService) CategoryProgress(name string) Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryProgressLocked(name)
}

func (s *WorkplanService) categoryProgressLocked(name string) Progress {
	var (
		total         int
		completed     int
		totalProgress float64
		estimated     int
		actual        int
	)
	for _, t := range s.tasks {
		if t.Category != name {
			continue
		}
		total++
		if t.Status == model.StatusCompleted {
			completed++
		}
		totalProgress += t.CompletionPercentage
		if t.EstimatedHours != nil {
			estimated += *t.EstimatedHours
		}
		if t.ActualHours != nil {
			actual += *t.ActualHours
		}
	}

	if total == 0 {
		return Progress{}
	}

	variance := 0
	if actual > 0 {
		variance = actual - estimated
	}
	return Progress{
		CompletionPercentage: float64(completed) / float64(total) * 100,
		AverageProgress:      totalProgress / float64(total),
		EstimatedHours:       estimated,
		ActualHours:          actual,
		HoursVariance:        variance,
	}
}

// ProjectSummary recomputes the dashboard rollup across every task,
// category and timeline week.
func (s *WorkplanService) ProjectSummary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		completed     int
		inProgress    int
		totalProgress float64
		estimated     int
		actual        int
	)
	for _, t := range s.tasks {
		switch t.Status {
		case model.StatusCompleted:
			completed++
		case model.StatusInProgress:
			inProgress++
		}
		totalProgress += t.CompletionPercentage
		if t.EstimatedHours != nil {
			estimated += *t.EstimatedHours
		}
		if t.ActualHours != nil {
			actual += *t.ActualHours
		}
	}

	total := len(s.tasks)
	sum := Summary{
		TotalTasks:          total,
		CompletedTasks:      completed,
		InProgressTasks:     inProgress,
		NotStartedTasks:     total - completed - inProgress,
		TotalEstimatedHours: estimated,
		TotalActualHours:    actual,
		HoursVariance:       actual - estimated,
		Categories:          make(map[string]Progress, len(s.categories)),
		TimelineWeeks:       len(s.timeline),
	}
	if total > 0 {
		sum.OverallCompletion = float64(completed) / float64(total) * 100
		sum.OverallProgress = totalProgress / float64(total)
	}
	for name := range s.categories {
		sum.Categories[name] = s.categoryProgressLocked(name)
	}
	return sum
}
