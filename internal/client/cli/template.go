package cli

import (
	"fmt"
	"text/template"

	pkgapi "github.com/iudanet/taskplanner/pkg/api"
)

const taskTemplate = `
=== Task #{{ .ID }} ===

Description: {{ .Description }}
Status:      {{ status . }}
Priority:    {{ .Priority }}
Category:    {{ .Category }}
Start:       {{ when .StartTime }}
End:         {{ when .EndTime }}
{{- if .Notes }}
Notes:       {{ .Notes }}
{{- end }}

`

const taskListTemplate = `
=== {{ .Title }} ===

{{- if eq (len .Tasks) 0 }}
No tasks found.

Use 'taskplanner add' to create a task.
{{ else }}
Found {{ len .Tasks }} task(s):
{{ range .Tasks }}
{{ mark . }} #{{ .ID }} {{ .Description }}
    {{ when .StartTime }} - {{ when .EndTime }} | {{ .Priority }} | {{ .Category }}
    {{- if eq (status .) "overdue" }} | OVERDUE{{ end }}
{{- end }}

Use 'taskplanner get <id>' to view notes.
{{ end }}`

const statisticsTemplate = `
=== Task Statistics ===

Total:         {{ .TotalTasks }}
Completed:     {{ .CompletedTasks }}
Pending:       {{ .PendingTasks }}
High priority: {{ .HighPriorityTasks }}
Work:          {{ .WorkTasks }}
Personal:      {{ .PersonalTasks }}
Today:         {{ .TodayTasks }}
Overdue:       {{ .OverdueTasks }}

`

// taskStatus статус задачи относительно текущего времени
func (c *Cli) taskStatus(task pkgapi.Task) string {
	switch {
	case task.Done:
		return "done"
	case task.EndTime.Before(c.now()):
		return "overdue"
	default:
		return "pending"
	}
}

func (c *Cli) render(name, text string, data any) error {
	funcs := template.FuncMap{
		"when": c.formatTime,
		"status": func(task pkgapi.Task) string {
			return c.taskStatus(task)
		},
		"mark": func(task pkgapi.Task) string {
			if task.Done {
				return "[x]"
			}
			return "[ ]"
		},
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

func (c *Cli) printTask(task *pkgapi.Task) error {
	return c.render("task", taskTemplate, *task)
}
