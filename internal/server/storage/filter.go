package storage

import (
	"strings"
	"time"
)

// TaskFilter описывает предикат выборки задач.
// Незаданные (nil / пустые) поля не участвуют в условии.
// Интервалы полуоткрытые: From включительно, Before исключительно.
type TaskFilter struct {
	Done        *bool
	Priority    *string
	Category    *string
	StartFrom   *time.Time // start_time >= StartFrom
	StartBefore *time.Time // start_time < StartBefore
	EndBefore   *time.Time // end_time < EndBefore
	OwnerID     string     // пусто = без фильтра по владельцу
}

// Dialect describes how a SQL backend binds placeholders and values.
type Dialect struct {
	// Placeholder returns the bind marker for the n-th (1-based) argument
	Placeholder func(n int) string
	// Time converts a timestamp into the stored column representation
	Time func(t time.Time) any
	// Bool converts a flag into the stored column representation
	Bool func(b bool) any
}

// Where builds the WHERE clause (including the keyword) for the filter.
// Returns an empty string when the filter has no conditions.
func (f TaskFilter) Where(d Dialect) (string, []any) {
	var (
		conds []string
		args  []any
	)

	add := func(expr string, arg any) {
		args = append(args, arg)
		conds = append(conds, expr+" "+d.Placeholder(len(args)))
	}

	if f.OwnerID != "" {
		add("user_id =", f.OwnerID)
	}
	if f.Done != nil {
		add("done =", d.Bool(*f.Done))
	}
	if f.Priority != nil {
		add("priority =", *f.Priority)
	}
	if f.Category != nil {
		add("category =", *f.Category)
	}
	if f.StartFrom != nil {
		add("start_time >=", d.Time(*f.StartFrom))
	}
	if f.StartBefore != nil {
		add("start_time <", d.Time(*f.StartBefore))
	}
	if f.EndBefore != nil {
		add("end_time <", d.Time(*f.EndBefore))
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time { return &t }
