package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workplan-dashboard/internal/model"
	"workplan-dashboard/internal/repository"
	"workplan-dashboard/internal/seed"
	"workplan-dashboard/internal/service"
)

func intPtr(v int) *int { return &v }

func TestCategoryProgressFreshCatalog(t *testing.T) {
	svc := demoService(t)

	p := svc.CategoryProgress(seed.CategoryFinancial)
	assert.Zero(t, p.CompletionPercentage)
	assert.Zero(t, p.AverageProgress)
	assert.Equal(t, 420, p.EstimatedHours)
	assert.Zero(t, p.ActualHours)
	assert.Zero(t, p.HoursVariance)

	assert.Equal(t, 332, svc.CategoryProgress(seed.CategoryBusinessOps).EstimatedHours)
	assert.Equal(t, 120, svc.CategoryProgress(seed.CategoryLeadership).EstimatedHours)
}

func TestCategoryProgressHalfComplete(t *testing.T) {
	store := &spyStore{available: true, records: &repository.Workplan{
		Categories: []model.Category{{Name: "Pilot"}},
		Tasks: []model.Task{
			{ID: "XX001", Title: "done", Category: "Pilot", Status: model.StatusCompleted,
				CompletionPercentage: 100, EstimatedHours: intPtr(10)},
			{ID: "XX002", Title: "pending", Category: "Pilot", Status: model.StatusNotStarted,
				EstimatedHours: intPtr(30)},
		},
	}}
	svc := service.NewWorkplanService(context.Background(), store, "postgres://unit", testLogger())

	p := svc.CategoryProgress("Pilot")
	assert.InDelta(t, 50.0, p.CompletionPercentage, 1e-9)
	assert.InDelta(t, 50.0, p.AverageProgress, 1e-9)
	assert.Equal(t, 40, p.EstimatedHours)
	assert.Zero(t, p.ActualHours)
	assert.Zero(t, p.HoursVariance)
}

func TestCategoryProgressUnknownCategory(t *testing.T) {
	svc := demoService(t)

	assert.Equal(t, service.Progress{}, svc.CategoryProgress("No Such Stream"))
}

func TestCategoryVarianceZeroUntilHoursLogged(t *testing.T) {
	svc, _ := storedService(t)

	assert.Zero(t, svc.CategoryProgress(seed.CategoryFinancial).HoursVariance)

	require.True(t, svc.UpdateTaskHours(context.Background(), "FE001", 30))

	p := svc.CategoryProgress(seed.CategoryFinancial)
	assert.Equal(t, 30, p.ActualHours)
	assert.Equal(t, 30-420, p.HoursVariance, "variance switches on once hours land")
}

func TestProjectSummaryFreshCatalog(t *testing.T) {
	svc := demoService(t)

	sum := svc.ProjectSummary()
	assert.Equal(t, 20, sum.TotalTasks)
	assert.Zero(t, sum.CompletedTasks)
	assert.Zero(t, sum.InProgressTasks)
	assert.Equal(t, 20, sum.NotStartedTasks)
	assert.Zero(t, sum.OverallCompletion)
	assert.Zero(t, sum.OverallProgress)
	assert.Equal(t, 872, sum.TotalEstimatedHours)
	assert.Zero(t, sum.TotalActualHours)
	assert.Equal(t, -872, sum.HoursVariance, "the project rollup subtracts even before hours are logged")
	assert.Equal(t, 15, sum.TimelineWeeks)

	require.Len(t, sum.Categories, 3)
	for _, name := range []string{seed.CategoryBusinessOps, seed.CategoryFinancial, seed.CategoryLeadership} {
		p, ok := sum.Categories[name]
		require.True(t, ok, "missing category %q", name)
		assert.Zero(t, p.HoursVariance, "category variance stays zero until hours are logged")
	}
}

func TestProjectSummaryCountsBuckets(t *testing.T) {
	svc, _ := storedService(t)
	ctx := context.Background()

	hundred := 100.0
	fifty := 50.0
	require.True(t, svc.UpdateTaskStatus(ctx, "BO001", model.StatusCompleted, &hundred))
	require.True(t, svc.UpdateTaskStatus(ctx, "FE001", model.StatusInProgress, &fifty))
	require.True(t, svc.UpdateTaskStatus(ctx, "CL001", model.StatusBlocked, nil))
	require.True(t, svc.UpdateTaskStatus(ctx, "BO002", model.StatusOnHold, nil))

	sum := svc.ProjectSummary()
	assert.Equal(t, 1, sum.CompletedTasks)
	assert.Equal(t, 1, sum.InProgressTasks)
	assert.Equal(t, 18, sum.NotStartedTasks, "blocked and on-hold tasks fall into the remainder")
	assert.InDelta(t, 5.0, sum.OverallCompletion, 1e-9)
	assert.InDelta(t, 7.5, sum.OverallProgress, 1e-9)
	assert.InDelta(t, 12.5, sum.Categories[seed.CategoryBusinessOps].CompletionPercentage, 1e-9)
}

func TestProjectSummaryEmptyStore(t *testing.T) {
	store := &spyStore{available: true, records: &repository.Workplan{
		Categories: []model.Category{{Name: "Empty Stream"}},
	}}
	svc := service.NewWorkplanService(context.Background(), store, "postgres://unit", testLogger())

	sum := svc.ProjectSummary()
	assert.Zero(t, sum.TotalTasks)
	assert.Zero(t, sum.NotStartedTasks)
	assert.Zero(t, sum.OverallCompletion)
	assert.Zero(t, sum.OverallProgress)
	assert.Zero(t, sum.HoursVariance)
	assert.Zero(t, sum.TimelineWeeks)
	assert.Equal(t, service.Progress{}, sum.Categories["Empty Stream"])
}
