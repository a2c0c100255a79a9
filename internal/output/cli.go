package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/stats"
	"github.com/habitta-app/habitta/internal/streak"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleHabit = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleStreak = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// HabitName formats a habit name.
func (c *CLIFormatter) HabitName(name string) string {
	if c.IsColorEnabled() {
		return styleHabit.Render(name)
	}
	return name
}

// Streak formats a streak figure.
func (c *CLIFormatter) Streak(text string) string {
	if c.IsColorEnabled() {
		return styleStreak.Render(text)
	}
	return text
}

// PrintHabitLine prints one habit row for list output.
func (c *CLIFormatter) PrintHabitLine(index int, h *model.Habit, result streak.Result, doneToday bool) {
	marker := " "
	if doneToday {
		marker = "✓"
	}

	line := fmt.Sprintf("%2d. [%s] %s", index, marker, c.HabitName(h.Name))
	if result.Current > 0 {
		line += fmt.Sprintf("  🔥 %s", c.Streak(FormatStreak(result.Current)))
	}
	c.Println(line)
	if h.Description != "" {
		c.Printf("      %s\n", h.Description)
	}
}

// PrintTodoLine prints one todo row for list output.
func (c *CLIFormatter) PrintTodoLine(index int, t *model.Todo) {
	marker := " "
	if t.Completed {
		marker = "x"
	}
	text := t.Text
	if c.IsColorEnabled() && t.Completed {
		text = styleMuted.Render(text)
	}
	c.Printf("%2d. [%s] %s\n", index, marker, text)
}

// PrintWeek prints the seven-day status row for a habit.
func (c *CLIFormatter) PrintWeek(days []stats.DayStatus) {
	var labels, cells strings.Builder
	for _, d := range days {
		labels.WriteString(fmt.Sprintf("%-4s", d.Label))
		cells.WriteString(fmt.Sprintf("%-4s", c.dayCell(d)))
	}
	c.Println(labels.String())
	c.Println(cells.String())
}

func (c *CLIFormatter) dayCell(d stats.DayStatus) string {
	switch {
	case d.Completed:
		return "●"
	case !d.Scheduled:
		return "·"
	case d.Today:
		return "○"
	default:
		return "✗"
	}
}

// PrintWeekBuckets prints the multi-week completion chart.
func (c *CLIFormatter) PrintWeekBuckets(buckets []stats.WeekBucket) {
	for _, b := range buckets {
		bar := ProgressBar(b.Percent, 20)
		c.Printf("%-8s %s %3.0f%%  (%d/%d)\n", b.Label, bar, b.Percent, b.Completed, b.Scheduled)
	}
}

// PrintTierState prints one achievement row.
func (c *CLIFormatter) PrintTierState(state stats.TierState) {
	marker := "○"
	if state.Unlocked {
		marker = "●"
	}
	name := state.Name
	if c.IsColorEnabled() {
		name = styleBold.Render(name)
	}
	c.Printf("%s %s - %s (%d pts)\n", marker, name, state.Description, state.Points)
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return bar
}

// Table helpers for CLI output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	if c.IsColorEnabled() {
		c.Println(styleBold.Render(headerLine.String()))
	} else {
		c.Println(headerLine.String())
	}

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(sep.String())

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(rowLine.String())
	}
}
