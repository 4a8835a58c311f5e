package tui

import (
	"fmt"
	"strings"

	"github.com/Joseda-hg/lazyboard/internal/model"
)

const summaryWidth = 60

func selectionPrefix(selected, focused bool) string {
	switch {
	case selected && focused:
		return ">"
	case selected:
		return "*"
	default:
		return " "
	}
}

func formatPostSummary(post model.Post) string {
	return fmt.Sprintf("#%-3d %s", post.ID, truncate(post.Title, summaryWidth))
}

func formatTaskSummary(task model.Task) string {
	mark := " "
	if task.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s", mark, truncate(task.Text, summaryWidth))
}

func postDetailLines(post model.Post) []string {
	return []string{
		post.Title,
		fmt.Sprintf("Post #%d by user %d", post.ID, post.UserID),
		"",
		post.Body,
	}
}

func taskDetailLines(task model.Task, stats model.TaskStats) []string {
	status := "active"
	if task.Completed {
		status = "completed"
	}
	return []string{
		task.Text,
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("Created: %s", task.CreatedAt.Local().Format("2006-01-02 15:04")),
		"",
		fmt.Sprintf("%d total | %d active | %d completed", stats.Total, stats.Active, stats.Completed),
	}
}

func pageLabel(page model.Page[model.Post]) string {
	if page.TotalPages == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d (%d posts)", page.CurrentPage, page.TotalPages, page.TotalItems)
}

// formatWindow renders a pager window such as "1 .. 4 [5] 6 .. 9".
func formatWindow(window []int, current int) string {
	parts := make([]string, 0, len(window))
	for _, number := range window {
		switch {
		case number == 0:
			parts = append(parts, "..")
		case number == current:
			parts = append(parts, fmt.Sprintf("[%d]", number))
		default:
			parts = append(parts, fmt.Sprint(number))
		}
	}
	return strings.Join(parts, " ")
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	return string(runes[:width-3]) + "..."
}
