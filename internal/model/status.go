package model

import "fmt"

// TaskStatus is the lifecycle stage of a task. Status and completion
// percentage are tracked independently.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "Not Started"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
	StatusBlocked    TaskStatus = "Blocked"
	StatusOnHold     TaskStatus = "On Hold"
)

// Statuses lists every task status in display order.
func Statuses() []TaskStatus {
	return []TaskStatus{StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked, StatusOnHold}
}

// ParseStatus coerces raw input into a TaskStatus.
func ParseStatus(raw string) (TaskStatus, error) {
	for _, s := range Statuses() {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

// TaskPriority ranks how urgent a task is.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// Priorities lists every task priority in rank order.
func Priorities() []TaskPriority {
	return []TaskPriority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParsePriority coerces raw input into a TaskPriority.
func ParsePriority(raw string) (TaskPriority, error) {
	for _, p := range Priorities() {
		if string(p) == raw {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", raw)
}
