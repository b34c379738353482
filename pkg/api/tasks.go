package api

import (
	"fmt"
	"strings"
	"time"
)

// TaskRequest представляет тело запроса на создание или изменение задачи.
// Done учитывается только при изменении и только если передан.
type TaskRequest struct {
	StartTime   Timestamp `json:"startTime"`
	EndTime     Timestamp `json:"endTime"`
	Done        *bool     `json:"done,omitempty"`
	Description string    `json:"description"`
	Priority    string    `json:"priority,omitempty"`
	Category    string    `json:"category,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// Task представляет задачу в ответах API
type Task struct {
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	Notes       string    `json:"notes"`
	ID          int64     `json:"id"`
	Done        bool      `json:"done"`
}

// TaskStatistics представляет счетчики для дашборда
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

// Форматы без часового пояса, которые присылает <input type="datetime-local">
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Timestamp is a point in time on the wire. It is written as RFC 3339 and
// read either as RFC 3339 or as a zone-less local date-time. A zone-less
// value is "floating": In attaches it to a concrete location.
type Timestamp struct {
	time.Time
	floating bool
}

// NewTimestamp wraps t
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Floating reports whether the value was read without a zone
func (ts Timestamp) Floating() bool {
	return ts.floating
}

// In returns the timestamp as an absolute time. Floating values keep their
// wall clock and are placed in loc; others are returned unchanged.
func (ts Timestamp) In(loc *time.Location) time.Time {
	if !ts.floating || ts.IsZero() {
		return ts.Time
	}
	t := ts.Time
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// MarshalJSON implements json.Marshaler
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ts.Time.Format(time.RFC3339Nano) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*ts = Timestamp{}
		return nil
	}

	s, ok := strings.CutPrefix(s, `"`)
	if ok {
		s, ok = strings.CutSuffix(s, `"`)
	}
	if !ok {
		return fmt.Errorf("timestamp must be a string, got %s", data)
	}
	if s == "" {
		*ts = Timestamp{}
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*ts = Timestamp{Time: t}
		return nil
	}

	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts = Timestamp{Time: t, floating: true}
			return nil
		}
	}

	return fmt.Errorf("invalid timestamp %q: expected RFC 3339 or %s", s, localLayouts[0])
}
