package model

import "time"

// TimelineWeek is one 7-day bucket of the engagement window. The final
// week is truncated when the window does not divide evenly.
type TimelineWeek struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	WeekNumber    int       `gorm:"uniqueIndex;not null" json:"week_number"`
	StartDate     time.Time `gorm:"not null" json:"start_date"`
	EndDate       time.Time `gorm:"not null" json:"end_date"`
	Month         string    `gorm:"size:50" json:"month"`
	AssignedTasks []string  `gorm:"serializer:json;type:text" json:"tasks"`
	CreatedAt     time.Time `json:"created_at"`
}
