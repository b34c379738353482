package models

import "time"

// Recognised priority values. Priority is free text; anything else sorts last.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Well-known categories counted by the statistics view.
const (
	CategoryWork     = "Work"
	CategoryPersonal = "Personal"
)

const (
	// DefaultPriority применяется, если приоритет не указан
	DefaultPriority = PriorityMedium
	// DefaultCategory применяется, если категория не указана
	DefaultCategory = CategoryPersonal
	// MaxNotesLen максимальная длина заметок (в символах)
	MaxNotesLen = 1000
)

// Task представляет задачу пользователя.
// ID равен 0, пока задача не сохранена в хранилище.
type Task struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	Notes       string    `json:"notes"`
	OwnerID     string    `json:"owner_id,omitempty"` // пусто в однопользовательском режиме
	ID          int64     `json:"id"`
	Done        bool      `json:"done"`
}

// PriorityRank returns the sort rank of a priority: High=1, Medium=2, Low=3,
// anything else 4.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// TaskStatistics is a dashboard snapshot computed on demand.
type TaskStatistics struct {
	TotalTasks        int64 `json:"totalTasks"`
	CompletedTasks    int64 `json:"completedTasks"`
	PendingTasks      int64 `json:"pendingTasks"`
	HighPriorityTasks int64 `json:"highPriorityTasks"`
	WorkTasks         int64 `json:"workTasks"`
	PersonalTasks     int64 `json:"personalTasks"`
	TodayTasks        int64 `json:"todayTasks"`
	OverdueTasks      int64 `json:"overdueTasks"`
}
