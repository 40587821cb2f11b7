package model

import "time"

// Task is a single work item on the plan. Identifiers follow the
// <category prefix><3-digit sequence> convention, e.g. BO001.
type Task struct {
	ID                   string       `gorm:"primaryKey;size:50" json:"id"`
	Title                string       `gorm:"size:500;not null" json:"title"`
	Description          string       `json:"description"`
	Category             string       `gorm:"size:255;index" json:"category"`
	Priority             TaskPriority `gorm:"size:20;default:'Medium'" json:"priority"`
	Status               TaskStatus   `gorm:"size:20;default:'Not Started'" json:"status"`
	StartDate            *time.Time   `json:"start_date"`
	EndDate              *time.Time   `json:"end_date"`
	EstimatedHours       *int         `json:"estimated_hours"`
	ActualHours          *int         `json:"actual_hours"`
	Dependencies         []string     `gorm:"serializer:json;type:text" json:"dependencies"`
	AssignedTo           string       `gorm:"size:255" json:"assigned_to"`
	CompletionPercentage float64      `gorm:"default:0" json:"completion_percentage"`
	Notes                string       `json:"notes"`
	Subtasks             []string     `gorm:"serializer:json;type:text" json:"subtasks"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}
