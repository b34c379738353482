package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/taskplanner/internal/models"
)

// displayLayout формат дат для ввода и вывода в локальном поясе
const displayLayout = "2006-01-02 15:04"

var inputLayouts = []string{
	displayLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// clearValue очищает необязательное поле при редактировании
const clearValue = "-"

func (c *Cli) parseTime(s string) (time.Time, error) {
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, c.loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected format %s", s, displayLayout)
}

func (c *Cli) formatTime(t time.Time) string {
	return t.In(c.loc).Format(displayLayout)
}

// readField запрашивает значение; пустой ввод оставляет current
func (c *Cli) readField(label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}

	value, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

func (c *Cli) readTime(label string, current time.Time) (time.Time, error) {
	var currentText string
	if !current.IsZero() {
		currentText = c.formatTime(current)
	}

	value, err := c.readField(fmt.Sprintf("%s (%s)", label, displayLayout), currentText)
	if err != nil {
		return time.Time{}, err
	}
	if value == "" {
		return time.Time{}, fmt.Errorf("%s time cannot be empty", strings.ToLower(label))
	}
	return c.parseTime(value)
}

func parseTaskID(args []string, command string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing task ID. Usage: taskplanner %s <id>", command)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID: %s", args[0])
	}
	return id, nil
}

// canonical приводит известные значения к каноническому регистру ("high" -> "High").
// Неизвестные значения возвращаются без изменений.
func canonical(value string, known ...string) string {
	for _, k := range known {
		if strings.EqualFold(value, k) {
			return k
		}
	}
	return value
}

func normalizePriority(priority string) string {
	return canonical(strings.TrimSpace(priority), models.PriorityHigh, models.PriorityMedium, models.PriorityLow)
}

func normalizeCategory(category string) string {
	return canonical(strings.TrimSpace(category), models.CategoryWork, models.CategoryPersonal)
}
