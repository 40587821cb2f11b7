package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"workplan-dashboard/internal/model"
	"workplan-dashboard/internal/repository"
	"workplan-dashboard/internal/seed"
	"workplan-dashboard/internal/snapshot"
)

// Store is the persistence adapter the service writes through. The
// implementation may be permanently unavailable; calls are best-effort
// and never gate in-memory state.
type Store interface {
	Available() bool
	LoadAll(ctx context.Context) (*repository.Workplan, error)
	SeedDefaults(ctx context.Context) error
	SaveTask(ctx context.Context, task model.Task) error
	SaveTimelineWeek(ctx context.Context, week model.TimelineWeek) error
}

// TaskInput carries the fields needed to create a task.
type TaskInput struct {
	Category       string
	Title          string
	Description    string
	Priority       model.TaskPriority
	EstimatedHours int
}

// TaskFilter narrows Tasks; zero fields are unconstrained.
type TaskFilter struct {
	Category string
	Status   model.TaskStatus
	Priority model.TaskPriority
}

// WorkplanService holds the authoritative in-memory workplan and writes
// every mutation through to the store when one is reachable. Reads are
// always served from memory.
type WorkplanService struct {
	mu         sync.RWMutex
	tasks      map[string]model.Task
	categories map[string]model.Category
	timeline   []model.TimelineWeek

	store  Store
	source string
	log    *slog.Logger
}

// NewWorkplanService hydrates a service from the store. An empty store
// is seeded with the default catalog and re-read; an unavailable store
// leaves the service running on the built-in catalog alone.
func NewWorkplanService(ctx context.Context, store Store, source string, log *slog.Logger) *WorkplanService {
	s := &WorkplanService{
		tasks:      make(map[string]model.Task),
		categories: make(map[string]model.Category),
		store:      store,
		source:     source,
		log:        log,
	}
	s.initialize(ctx)
	return s
}

func (s *WorkplanService) initialize(ctx context.Context) {
	if s.store == nil || !s.store.Available() {
		s.loadDefaults()
		s.log.Info("running on built-in catalog", "tasks", len(s.tasks))
		return
	}

	records, err := s.store.LoadAll(ctx)
	if err != nil {
		s.log.Warn("load failed, using built-in catalog", "error", err)
		s.loadDefaults()
		return
	}

	if len(records.Categories) == 0 {
		if err := s.store.SeedDefaults(ctx); err != nil {
			s.log.Warn("seed failed, using built-in catalog", "error", err)
			s.loadDefaults()
			return
		}
		if records, err = s.store.LoadAll(ctx); err != nil {
			s.log.Warn("reload after seed failed, using built-in catalog", "error", err)
			s.loadDefaults()
			return
		}
	}

	for _, c := range records.Categories {
		s.categories[c.Name] = c
	}
	for _, t := range records.Tasks {
		s.tasks[t.ID] = t
	}
	s.timeline = records.Weeks
	s.log.Info("workplan loaded", "categories", len(s.categories), "tasks", len(s.tasks), "weeks", len(s.timeline))
}

func (s *WorkplanService) loadDefaults() {
	for _, c := range seed.Categories() {
		s.categories[c.Name] = c
	}
	for _, t := range seed.Tasks() {
		s.tasks[t.ID] = t
	}
	s.timeline = seed.TimelineWeeks()
}

// StoreAvailable reports whether the persistence adapter is serving.
func (s *WorkplanService) StoreAvailable() bool {
	return s.store != nil && s.store.Available()
}

// Task returns one task by id.
func (s *WorkplanService) Task(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	return t, ok
}

// Tasks lists tasks matching the filter, ordered by id.
func (s *WorkplanService) Tasks(filter TaskFilter) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Categories lists categories ordered by name.
func (s *WorkplanService) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Category returns one category by name.
func (s *WorkplanService) Category(name string) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[name]
	return c, ok
}

// Timeline returns the engagement weeks in order.
func (s *WorkplanService) Timeline() []model.TimelineWeek {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.TimelineWeek, len(s.timeline))
	copy(out, s.timeline)
	return out
}

// CreateTask adds a task to the plan and returns its allocated id. Ids
// take the category prefix plus a three-digit sequence, starting at the
// current prefix count plus one and walking past collisions.
func (s *WorkplanService) CreateTask(ctx context.Context, input TaskInput) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}

	now := time.Now()
	t := model.Task{
		ID:           s.nextTaskIDLocked(input.Category),
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Priority:     input.Priority,
		Status:       model.StatusNotStarted,
		Dependencies: []string{},
		Subtasks:     []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.EstimatedHours > 0 {
		t.EstimatedHours = &input.EstimatedHours
	}

	s.tasks[t.ID] = t
	s.persistTask(ctx, t)
	return t.ID
}

// nextTaskIDLocked allocates by scanning existing ids. The service
// mutex serializes it in-process; two processes sharing one store can
// still race to the same id.
func (s *WorkplanService) nextTaskIDLocked(category string) string {
	prefix := seed.CategoryPrefix(category)

	count := 0
	for id := range s.tasks {
		if strings.HasPrefix(id, prefix) {
			count++
		}
	}

	next := count + 1
	for {
		id := fmt.Sprintf("%s%03d", prefix, next)
		if _, exists := s.tasks[id]; !exists {
			return id
		}
		next++
	}
}

// UpdateTaskTitle renames a task. Unknown ids return false.
func (s *WorkplanService) UpdateTaskTitle(ctx context.Context, id, title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	t.Title = title
	t.UpdatedAt = time.Now()
	s.tasks[id] = t
	s.persistTask(ctx, t)
	return true
}

// UpdateTaskDescription rewrites a task's description.
func (s *WorkplanService) UpdateTaskDescription(ctx context.Context, id, description string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	t.Description = description
	t.UpdatedAt = time.Now()
	s.tasks[id] = t
	s.persistTask(ctx, t)
	return true
}

// UpdateTaskStatus moves a task to a new status and, when completion is
// non-nil, adjusts its completion percentage. The two stay independent
// otherwise.
func (s *WorkplanService) UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus, completion *float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	t.Status = status
	if completion != nil {
		t.CompletionPercentage = *completion
	}
	t.UpdatedAt = time.Now()
	s.tasks[id] = t
	s.persistTask(ctx, t)
	return true
}

// UpdateTaskHours records the hours actually spent on a task.
func (s *WorkplanService) UpdateTaskHours(ctx context.Context, id string, actualHours int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	t.ActualHours = &actualHours
	t.UpdatedAt = time.Now()
	s.tasks[id] = t
	s.persistTask(ctx, t)
	return true
}

// AssignTaskToWeek pins a task id onto a timeline week. Returns false
// when the week does not exist; task ids are stored as given, without
// validation. Assigning the same id twice keeps a single entry.
func (s *WorkplanService) AssignTaskToWeek(ctx context.Context, taskID string, weekNumber int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.timeline {
		if s.timeline[i].WeekNumber != weekNumber {
			continue
		}
		if slices.Contains(s.timeline[i].AssignedTasks, taskID) {
			return true
		}
		assigned := append([]string(nil), s.timeline[i].AssignedTasks...)
		s.timeline[i].AssignedTasks = append(assigned, taskID)
		s.persistWeek(ctx, s.timeline[i])
		return true
	}
	return false
}

// persistTask writes one task through to the store. Failures are logged
// and swallowed; the in-memory change stands either way.
func (s *WorkplanService) persistTask(ctx context.Context, t model.Task) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveTask(ctx, t); err != nil {
		s.log.Warn("save task failed, keeping in-memory change", "task", t.ID, "error", err)
	}
}

func (s *WorkplanService) persistWeek(ctx context.Context, w model.TimelineWeek) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveTimelineWeek(ctx, w); err != nil {
		s.log.Warn("save week failed, keeping in-memory change", "week", w.WeekNumber, "error", err)
	}
}

// Snapshot captures the full in-memory state as a portable document.
func (s *WorkplanService) Snapshot() snapshot.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := snapshot.Document{
		Categories:    make(map[string]model.Category, len(s.categories)),
		Tasks:         make(map[string]model.Task, len(s.tasks)),
		TimelineWeeks: make([]model.TimelineWeek, len(s.timeline)),
		LastUpdated:   time.Now(),
		SourcePath:    s.source,
	}
	for name, c := range s.categories {
		doc.Categories[name] = c
	}
	for id, t := range s.tasks {
		doc.Tasks[id] = t
	}
	copy(doc.TimelineWeeks, s.timeline)
	return doc
}

// SaveSnapshot writes the current state to path.
func (s *WorkplanService) SaveSnapshot(path string) error {
	return snapshot.Write(path, s.Snapshot())
}

// RestoreSnapshot replaces the in-memory state with a previously saved
// document. Returns false when the file is missing or unreadable; the
// current state is untouched in that case.
func (s *WorkplanService) RestoreSnapshot(path string) bool {
	doc, err := snapshot.Read(path)
	if err != nil {
		s.log.Warn("restore snapshot failed", "path", path, "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = doc.Categories
	if s.categories == nil {
		s.categories = make(map[string]model.Category)
	}
	s.tasks = doc.Tasks
	if s.tasks == nil {
		s.tasks = make(map[string]model.Task)
	}
	s.timeline = doc.TimelineWeeks
	s.log.Info("snapshot restored", "path", path, "tasks", len(s.tasks))
	return true
}
