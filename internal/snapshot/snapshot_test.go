package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workplan-dashboard/internal/model"
	"workplan-dashboard/internal/snapshot"
)

func TestWriteReadRoundTrip(t *testing.T) {
	est := 16
	actual := 9
	doc := snapshot.Document{
		Categories: map[string]model.Category{
			"Platform": {Name: "Platform", TeamSize: 2, TotalEstimatedHours: 16},
		},
		Tasks: map[string]model.Task{
			"XX001": {
				ID: "XX001", Title: "Migrate registry", Category: "Platform",
				Priority: model.PriorityHigh, Status: model.StatusInProgress,
				EstimatedHours: &est, ActualHours: &actual,
				Dependencies:         []string{"XX000"},
				Subtasks:             []string{"Inventory images", "Cut over"},
				CompletionPercentage: 37.5,
			},
		},
		TimelineWeeks: []model.TimelineWeek{
			{WeekNumber: 1, Month: "September 2025", AssignedTasks: []string{"XX001"}},
		},
		LastUpdated: time.Date(2025, 9, 15, 10, 30, 0, 0, time.UTC),
		SourcePath:  "postgres://unit",
	}

	path := filepath.Join(t.TempDir(), "workplan_data.json")
	require.NoError(t, snapshot.Write(path, doc))

	got, err := snapshot.Read(path)
	require.NoError(t, err)

	assert.Equal(t, doc.Categories, got.Categories)
	assert.Equal(t, doc.TimelineWeeks[0].AssignedTasks, got.TimelineWeeks[0].AssignedTasks)
	assert.Equal(t, doc.SourcePath, got.SourcePath)
	assert.True(t, doc.LastUpdated.Equal(got.LastUpdated))

	task := got.Tasks["XX001"]
	assert.Equal(t, "Migrate registry", task.Title)
	assert.Equal(t, model.StatusInProgress, task.Status)
	require.NotNil(t, task.EstimatedHours)
	assert.Equal(t, 16, *task.EstimatedHours)
	require.NotNil(t, task.ActualHours)
	assert.Equal(t, 9, *task.ActualHours)
	assert.Equal(t, []string{"XX000"}, task.Dependencies)
	assert.Len(t, task.Subtasks, 2)
	assert.Equal(t, 37.5, task.CompletionPercentage)
}

func TestWriteProducesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workplan_data.json")
	require.NoError(t, snapshot.Write(path, snapshot.Document{SourcePath: "memory"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"source_path\": \"memory\"")
}

func TestReadMissingFile(t *testing.T) {
	_, err := snapshot.Read(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRejectsCorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := snapshot.Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse snapshot")
}
