package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"workplan-dashboard/internal/model"
	"workplan-dashboard/internal/seed"
)

// ErrUnavailable marks an adapter that never reached the store. The
// state is terminal for the process lifetime; callers degrade to
// in-memory data instead of retrying.
var ErrUnavailable = errors.New("store unavailable")

// State tracks the adapter's connection lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateConnected
	StateUnavailable
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateUnavailable:
		return "unavailable"
	default:
		return "uninitialized"
	}
}

// Workplan bundles everything the store holds.
type Workplan struct {
	Categories []model.Category
	Tasks      []model.Task
	Weeks      []model.TimelineWeek
}

// WorkplanRepository persists the workplan in a relational store. Write
// operations on an unavailable adapter are silent no-ops; the in-memory
// state upstream stays authoritative.
type WorkplanRepository struct {
	db    *gorm.DB
	state State
	log   *slog.Logger
}

// Connect opens the store and migrates the schema. Failure is not
// fatal: the adapter comes back unavailable and stays that way.
func Connect(dsn string, log *slog.Logger) *WorkplanRepository {
	r := &WorkplanRepository{log: log}

	db, err := openDB(dsn)
	if err != nil {
		r.state = StateUnavailable
		log.Warn("store unavailable, continuing without persistence", "error", err)
		return r
	}

	r.db = db
	r.state = StateConnected
	log.Info("store connected")
	return r
}

// State reports the adapter's lifecycle state.
func (r *WorkplanRepository) State() State {
	return r.state
}

// Available reports whether the store can serve operations.
func (r *WorkplanRepository) Available() bool {
	return r.state == StateConnected
}

// LoadAll reads the complete workplan. Ordering is stable: categories
// by name, tasks by id, weeks by week number.
func (r *WorkplanRepository) LoadAll(ctx context.Context) (*Workplan, error) {
	if !r.Available() {
		return nil, ErrUnavailable
	}

	var wp Workplan
	if err := r.db.WithContext(ctx).Order("name").Find(&wp.Categories).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if err := r.db.WithContext(ctx).Order("id").Find(&wp.Tasks).Error; err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if err := r.db.WithContext(ctx).Order("week_number").Find(&wp.Weeks).Error; err != nil {
		return nil, fmt.Errorf("load timeline: %w", err)
	}
	return &wp, nil
}

// SeedDefaults inserts the default catalog, skipping rows that already
// exist. Running it twice leaves the store unchanged.
func (r *WorkplanRepository) SeedDefaults(ctx context.Context) error {
	if !r.Available() {
		return nil
	}

	cats := seed.Categories()
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&cats).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	tasks := seed.Tasks()
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tasks).Error; err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}

	weeks := seed.TimelineWeeks()
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&weeks).Error; err != nil {
		return fmt.Errorf("seed timeline: %w", err)
	}

	r.log.Info("seeded default catalog", "categories", len(cats), "tasks", len(tasks), "weeks", len(weeks))
	return nil
}

// taskUpdateColumns are the columns a task upsert overwrites. Category
// and created_at are fixed at insert time.
var taskUpdateColumns = []string{
	"title", "description", "priority", "status", "start_date", "end_date",
	"estimated_hours", "actual_hours", "dependencies", "assigned_to",
	"completion_percentage", "notes", "subtasks", "updated_at",
}

// SaveTask upserts one task row, last write wins.
func (r *WorkplanRepository) SaveTask(ctx context.Context, task model.Task) error {
	if !r.Available() {
		return nil
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(taskUpdateColumns),
	}).Create(&task).Error
	if err != nil {
		return fmt.Errorf("save task %s: %w", task.ID, err)
	}
	return nil
}

// SaveTimelineWeek upserts one week row keyed by week number.
func (r *WorkplanRepository) SaveTimelineWeek(ctx context.Context, week model.TimelineWeek) error {
	if !r.Available() {
		return nil
	}

	// Leave id assignment to the store so the conflict lands on the
	// week_number key.
	week.ID = 0

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "week_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"start_date", "end_date", "month", "assigned_tasks"}),
	}).Create(&week).Error
	if err != nil {
		return fmt.Errorf("save week %d: %w", week.WeekNumber, err)
	}
	return nil
}

// Close releases the underlying connection if one was opened.
func (r *WorkplanRepository) Close() error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
