package service_test

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"testing"

	"pgregory.net/rapid"

	"workplan-dashboard/internal/model"
	"workplan-dashboard/internal/repository"
	"workplan-dashboard/internal/seed"
	"workplan-dashboard/internal/service"
)

// Property: category metrics always equal a straight recomputation over
// the category's tasks, whatever mix of statuses and hours they carry.
func TestCategoryProgressRecomputes(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 25).Draw(rt, "num_tasks")

		var (
			tasks        []model.Task
			completed    int
			sumProgress  float64
			sumEstimated int
			sumActual    int
		)
		for i := 0; i < n; i++ {
			task := model.Task{
				ID:                   fmt.Sprintf("XX%03d", i+1),
				Title:                "generated",
				Category:             "Stream",
				Status:               rapid.SampledFrom(model.Statuses()).Draw(rt, fmt.Sprintf("status_%d", i)),
				CompletionPercentage: rapid.Float64Range(0, 100).Draw(rt, fmt.Sprintf("progress_%d", i)),
			}
			if rapid.Bool().Draw(rt, fmt.Sprintf("has_estimate_%d", i)) {
				est := rapid.IntRange(0, 80).Draw(rt, fmt.Sprintf("estimate_%d", i))
				task.EstimatedHours = &est
				sumEstimated += est
			}
			if rapid.Bool().Draw(rt, fmt.Sprintf("has_actual_%d", i)) {
				act := rapid.IntRange(0, 80).Draw(rt, fmt.Sprintf("actual_%d", i))
				task.ActualHours = &act
				sumActual += act
			}
			if task.Status == model.StatusCompleted {
				completed++
			}
			sumProgress += task.CompletionPercentage
			tasks = append(tasks, task)
		}

		store := &spyStore{available: true, records: &repository.Workplan{
			Categories: []model.Category{{Name: "Stream"}},
			Tasks:      tasks,
		}}
		svc := service.NewWorkplanService(context.Background(), store, "postgres://prop", testLogger())

		p := svc.CategoryProgress("Stream")
		wantCompletion := float64(completed) / float64(n) * 100
		if math.Abs(p.CompletionPercentage-wantCompletion) > 1e-6 {
			rt.Fatalf("CompletionPercentage = %v, want %v", p.CompletionPercentage, wantCompletion)
		}
		wantAverage := sumProgress / float64(n)
		if math.Abs(p.AverageProgress-wantAverage) > 1e-6 {
			rt.Fatalf("AverageProgress = %v, want %v", p.AverageProgress, wantAverage)
		}
		if p.EstimatedHours != sumEstimated {
			rt.Fatalf("EstimatedHours = %d, want %d", p.EstimatedHours, sumEstimated)
		}
		if p.ActualHours != sumActual {
			rt.Fatalf("ActualHours = %d, want %d", p.ActualHours, sumActual)
		}
		wantVariance := 0
		if sumActual > 0 {
			wantVariance = sumActual - sumEstimated
		}
		if p.HoursVariance != wantVariance {
			rt.Fatalf("HoursVariance = %d, want %d", p.HoursVariance, wantVariance)
		}
		if p.CompletionPercentage < 0 || p.CompletionPercentage > 100 {
			rt.Fatalf("CompletionPercentage %v out of range", p.CompletionPercentage)
		}
		if p.AverageProgress < 0 || p.AverageProgress > 100+1e-6 {
			rt.Fatalf("AverageProgress %v out of range", p.AverageProgress)
		}
	})
}

// Property: the status buckets always partition the task set.
func TestSummaryBucketsPartitionTasks(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(rt, "num_tasks")
		tasks := make([]model.Task, 0, n)
		for i := 0; i < n; i++ {
			tasks = append(tasks, model.Task{
				ID:       fmt.Sprintf("XX%03d", i+1),
				Title:    "generated",
				Category: "Stream",
				Status:   rapid.SampledFrom(model.Statuses()).Draw(rt, fmt.Sprintf("status_%d", i)),
			})
		}
		store := &spyStore{available: true, records: &repository.Workplan{
			Categories: []model.Category{{Name: "Stream"}},
			Tasks:      tasks,
		}}
		svc := service.NewWorkplanService(context.Background(), store, "postgres://prop", testLogger())

		sum := svc.ProjectSummary()
		if sum.TotalTasks != n {
			rt.Fatalf("TotalTasks = %d, want %d", sum.TotalTasks, n)
		}
		if got := sum.CompletedTasks + sum.InProgressTasks + sum.NotStartedTasks; got != n {
			rt.Fatalf("buckets sum to %d, want %d", got, n)
		}
		if sum.NotStartedTasks < 0 {
			rt.Fatalf("NotStartedTasks = %d, must not go negative", sum.NotStartedTasks)
		}
	})
}

// Property: the allocator never hands out an id that is already taken.
func TestCreateTaskNeverReusesIDs(t *testing.T) {
	idShape := regexp.MustCompile(`^[A-Z]{2}\d{3,}$`)
	rapid.Check(t, func(rt *rapid.T) {
		svc := service.NewWorkplanService(context.Background(), nil, "memory", testLogger())
		ctx := context.Background()
		categories := []string{seed.CategoryBusinessOps, seed.CategoryFinancial, seed.CategoryLeadership, "Side Quests"}

		seen := make(map[string]bool, 32)
		for _, task := range svc.Tasks(service.TaskFilter{}) {
			seen[task.ID] = true
		}

		creates := rapid.IntRange(1, 12).Draw(rt, "num_creates")
		for i := 0; i < creates; i++ {
			category := rapid.SampledFrom(categories).Draw(rt, fmt.Sprintf("category_%d", i))
			id := svc.CreateTask(ctx, service.TaskInput{Category: category, Title: "generated"})
			if seen[id] {
				rt.Fatalf("id %s allocated twice", id)
			}
			if !idShape.MatchString(id) {
				rt.Fatalf("id %s has the wrong shape", id)
			}
			seen[id] = true

			task, ok := svc.Task(id)
			if !ok {
				rt.Fatalf("created task %s not retrievable", id)
			}
			if task.Category != category {
				rt.Fatalf("task %s landed in %q, want %q", id, task.Category, category)
			}
		}
	})
}
