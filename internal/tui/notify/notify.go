// Package notify holds user-facing notifications shown above the active view
package notify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Justice-Caban/QuickQuotes/internal/color"
	"github.com/Justice-Caban/QuickQuotes/internal/storage"
	"github.com/Justice-Caban/QuickQuotes/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Notification is a message that needs the user's attention
type Notification struct {
	Title       string // Brief title (e.g., "Invalid Color")
	Message     string
	Severity    Severity
	Suggestion  string // What the user should do
	Dismissible bool
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

// List manages the pending notifications
type List struct {
	notifications []Notification
}

// Add adds a new notification
func (l *List) Add(n Notification) {
	l.notifications = append(l.notifications, n)
}

// AddError adds a notification built from its fields
func (l *List) AddError(title, message, suggestion string, severity Severity) {
	l.Add(Notification{
		Title:       title,
		Message:     message,
		Severity:    severity,
		Suggestion:  suggestion,
		Dismissible: severity != SeverityCritical,
	})
}

// HasErrors returns true if there are any notifications
func (l *List) HasErrors() bool {
	return len(l.notifications) > 0
}

// HasCritical returns true if there are critical notifications
func (l *List) HasCritical() bool {
	for _, n := range l.notifications {
		if n.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// Count returns the number of notifications
func (l *List) Count() int {
	return len(l.notifications)
}

// Dismiss removes the oldest dismissible notification and reports whether
// one was removed
func (l *List) Dismiss() bool {
	for i, n := range l.notifications {
		if n.Dismissible {
			l.notifications = append(l.notifications[:i], l.notifications[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all notifications
func (l *List) Clear() {
	l.notifications = nil
}

// All returns all notifications
func (l *List) All() []Notification {
	return l.notifications
}

// Render renders all notifications with the current theme
func (l *List) Render(width int, s theme.Styles) string {
	if len(l.notifications) == 0 {
		return ""
	}

	sections := make([]string, 0, len(l.notifications))
	for _, n := range l.notifications {
		sections = append(sections, renderNotification(n, width, s))
	}

	return strings.Join(sections, "\n")
}

func renderNotification(n Notification, width int, s theme.Styles) string {
	var (
		iconStyle lipgloss.Style
		borderCol lipgloss.TerminalColor
		icon      string
	)

	switch n.Severity {
	case SeverityInfo:
		iconStyle = lipgloss.NewStyle().Foreground(s.Primary).Bold(true)
		borderCol = s.Primary
		icon = "ℹ"
	case SeverityWarning:
		iconStyle = lipgloss.NewStyle().Foreground(s.WarnColor).Bold(true)
		borderCol = s.WarnColor
		icon = "⚠"
	case SeverityError:
		iconStyle = lipgloss.NewStyle().Foreground(s.ErrorColor).Bold(true)
		borderCol = s.ErrorColor
		icon = "✗"
	default:
		iconStyle = lipgloss.NewStyle().Foreground(s.ErrorColor).Bold(true).Underline(true)
		borderCol = s.ErrorColor
		icon = "🛑"
	}

	var content strings.Builder
	content.WriteString(iconStyle.Render(fmt.Sprintf("%s %s", icon, n.Title)))
	content.WriteString("\n")
	content.WriteString(s.Text.Render(n.Message))

	if n.Suggestion != "" {
		content.WriteString("\n")
		content.WriteString(s.MutedText.Italic(true).Render("→ " + n.Suggestion))
	}

	if width < 8 {
		width = 8
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderCol).
		Padding(0, 2).
		Width(width - 4)

	return box.Render(content.String())
}

// Msg asks the app shell to show a notification
type Msg struct {
	Notification Notification
}

// Cmd returns a command that emits n
func Cmd(n Notification) tea.Cmd {
	return func() tea.Msg {
		return Msg{Notification: n}
	}
}

// Info returns a dismissible informational notification
func Info(title, message string) Notification {
	return Notification{Title: title, Message: message, Severity: SeverityInfo, Dismissible: true}
}

// FromError describes err for the user, with a suggestion for the errors
// they can fix themselves
func FromError(title string, err error) Notification {
	n := Notification{
		Title:       title,
		Message:     err.Error(),
		Severity:    SeverityError,
		Dismissible: true,
	}

	switch {
	case errors.Is(err, color.ErrInvalidColorFormat):
		n.Severity = SeverityWarning
		n.Suggestion = "Enter a color as #rrggbb, for example " + theme.DefaultCustomColor
	case errors.Is(err, storage.ErrInvalidQuote):
		n.Severity = SeverityWarning
		n.Suggestion = fmt.Sprintf("Quotes need content, an author and at most %d characters", storage.MaxQuoteLength)
	case errors.Is(err, storage.ErrQuoteNotFound):
		n.Severity = SeverityWarning
		n.Suggestion = "Press r to refresh the list"
	}

	return n
}
