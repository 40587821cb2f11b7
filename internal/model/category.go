package model

import "time"

// Category groups tasks by work stream. It carries descriptive metadata
// only; membership and progress are always computed from the tasks that
// reference it by name.
type Category struct {
	ID                  uint      `gorm:"primaryKey" json:"-"`
	Name                string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description         string    `json:"description"`
	TeamSize            int       `gorm:"default:1" json:"team_size"`
	TotalEstimatedHours int       `gorm:"default:0" json:"total_estimated_hours"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
