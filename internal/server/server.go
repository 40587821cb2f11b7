// Package server exposes the workplan over a JSON API. Rendering is
// left to dashboard clients; this process only serves data.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"workplan-dashboard/internal/model"
	"workplan-dashboard/internal/service"
)

// Server is the dashboard HTTP server.
type Server struct {
	addr         string
	workplan     *service.WorkplanService
	snapshotPath string
	log          *slog.Logger
	server       *http.Server
}

// New creates a dashboard server around the workplan service.
func New(addr string, workplan *service.WorkplanService, snapshotPath string, log *slog.Logger) *Server {
	return &Server{
		addr:         addr,
		workplan:     workplan,
		snapshotPath: snapshotPath,
		log:          log,
	}
}

// Start serves HTTP until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.log.Info("dashboard server starting", "addr", s.addr)
	return s.server.ListenAndServe()
}

// Handler builds the route table; exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/categories/{name}", s.handleCategory)
	mux.HandleFunc("GET /api/tasks", s.handleTasks)
	mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	mux.HandleFunc("GET /api/tasks/{id}", s.handleTask)
	mux.HandleFunc("PUT /api/tasks/{id}/title", s.handleUpdateTitle)
	mux.HandleFunc("PUT /api/tasks/{id}/description", s.handleUpdateDescription)
	mux.HandleFunc("PUT /api/tasks/{id}/status", s.handleUpdateStatus)
	mux.HandleFunc("PUT /api/tasks/{id}/hours", s.handleUpdateHours)
	mux.HandleFunc("GET /api/timeline", s.handleTimeline)
	mux.HandleFunc("POST /api/timeline/{week}/tasks", s.handleAssignTask)
	mux.HandleFunc("GET /api/snapshot", s.handleSnapshot)
	mux.HandleFunc("POST /api/snapshot/save", s.handleSnapshotSave)
	mux.HandleFunc("POST /api/snapshot/restore", s.handleSnapshotRestore)

	return mux
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// CategoryView pairs a category with its live progress metrics.
type CategoryView struct {
	model.Category
	Progress service.Progress `json:"progress"`
}

// CategoryDetail adds the category's tasks to the view.
type CategoryDetail struct {
	model.Category
	Progress service.Progress `json:"progress"`
	Tasks    []model.Task     `json:"tasks"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	store := "unavailable"
	if s.workplan.StoreAvailable() {
		store = "connected"
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "store": store})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.workplan.ProjectSummary())
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories := s.workplan.Categories()
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, CategoryView{
			Category: c,
			Progress: s.workplan.CategoryProgress(c.Name),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	category, ok := s.workplan.Category(name)
	if !ok {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, CategoryDetail{
		Category: category,
		Progress: s.workplan.CategoryProgress(name),
		Tasks:    s.workplan.Tasks(service.TaskFilter{Category: name}),
	})
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	filter := service.TaskFilter{Category: r.URL.Query().Get("category")}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := model.ParseStatus(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Status = status
	}
	if raw := r.URL.Query().Get("priority"); raw != "" {
		priority, err := model.ParsePriority(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Priority = priority
	}

	writeJSON(w, http.StatusOK, s.workplan.Tasks(filter))
}

func (s *Server) handleTask(w http.ResponseWriter, r *http.Request) {
	task, ok := s.workplan.Task(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category       string `json:"category"`
		Title          string `json:"title"`
		Description    string `json:"description"`
		Priority       string `json:"priority"`
		EstimatedHours int    `json:"estimated_hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	input := service.TaskInput{
		Category:       req.Category,
		Title:          req.Title,
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
	}
	if req.Priority != "" {
		priority, err := model.ParsePriority(req.Priority)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		input.Priority = priority
	}

	id := s.workplan.CreateTask(r.Context(), input)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleUpdateTitle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	respondUpdated(w, s.workplan.UpdateTaskTitle(r.Context(), r.PathValue("id"), req.Title))
}

func (s *Server) handleUpdateDescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	respondUpdated(w, s.workplan.UpdateTaskDescription(r.Context(), r.PathValue("id"), req.Description))
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status               string   `json:"status"`
		CompletionPercentage *float64 `json:"completion_percentage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondUpdated(w, s.workplan.UpdateTaskStatus(r.Context(), r.PathValue("id"), status, req.CompletionPercentage))
}

func (s *Server) handleUpdateHours(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActualHours *int `json:"actual_hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.ActualHours == nil {
		writeError(w, http.StatusBadRequest, "actual_hours is required")
		return
	}
	respondUpdated(w, s.workplan.UpdateTaskHours(r.Context(), r.PathValue("id"), *req.ActualHours))
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.workplan.Timeline())
}

func (s *Server) handleAssignTask(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week number")
		return
	}

	var req struct {
		TaskID string `json:"task_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.TaskID == "" {
		writeError(w, http.StatusBadRequest, "task_id is required")
		return
	}

	assigned := s.workplan.AssignTaskToWeek(r.Context(), req.TaskID, week)
	status := http.StatusOK
	if !assigned {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]bool{"assigned": assigned})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.workplan.Snapshot())
}

func (s *Server) handleSnapshotSave(w http.ResponseWriter, r *http.Request) {
	if err := s.workplan.SaveSnapshot(s.snapshotPath); err != nil {
		s.log.Error("save snapshot failed", "path", s.snapshotPath, "error", err)
		writeError(w, http.StatusInternalServerError, "save snapshot failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": s.snapshotPath})
}

func (s *Server) handleSnapshotRestore(w http.ResponseWriter, r *http.Request) {
	if !s.workplan.RestoreSnapshot(s.snapshotPath) {
		writeError(w, http.StatusNotFound, "no snapshot to restore")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"restored": true})
}

func respondUpdated(w http.ResponseWriter, updated bool) {
	status := http.StatusOK
	if !updated {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]bool{"updated": updated})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
