package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iudanet/taskplanner/internal/models"
)

// ValidateTask проверяет поля задачи перед сохранением.
// Порядок EndTime >= StartTime не проверяется.
func ValidateTask(task *models.Task) error {
	if task == nil {
		return fmt.Errorf("task is required")
	}

	if strings.TrimSpace(task.Description) == "" {
		return fmt.Errorf("description is required")
	}

	if err := validateTime("start time", task.StartTime); err != nil {
		return err
	}
	if err := validateTime("end time", task.EndTime); err != nil {
		return err
	}

	if n := utf8.RuneCountInString(task.Notes); n > models.MaxNotesLen {
		return fmt.Errorf("notes must not exceed %d characters, got %d", models.MaxNotesLen, n)
	}

	return nil
}

func validateTime(field string, t time.Time) error {
	if t.IsZero() {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
