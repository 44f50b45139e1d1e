package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// Manager handles user interface and output formatting
type Manager struct {
	colors  bool
	verbose bool
}

// NewManager creates a new UI manager
func NewManager(colors, verbose bool) *Manager {
	return &Manager{
		colors:  colors,
		verbose: verbose,
	}
}

// Verbose reports whether verbose output is enabled.
func (m *Manager) Verbose() bool { return m.verbose }

// Success prints a success message
func (m *Manager) Success(format string, args ...interface{}) {
	m.print(successStyle, "✓", format, args...)
}

// Error prints an error message
func (m *Manager) Error(format string, args ...interface{}) {
	m.print(errorStyle, "✗", format, args...)
}

// Warning prints a warning message
func (m *Manager) Warning(format string, args ...interface{}) {
	m.print(warningStyle, "⚠", format, args...)
}

// Info prints an informational message
func (m *Manager) Info(format string, args ...interface{}) {
	m.print(infoStyle, "ℹ", format, args...)
}

// Progress prints a progress message (only if verbose)
func (m *Manager) Progress(format string, args ...interface{}) {
	if !m.verbose {
		return
	}
	m.print(progressStyle, "→", format, args...)
}

func (m *Manager) print(style lipgloss.Style, mark, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if m.colors {
		fmt.Printf("%s %s\n", style.Render(mark), message)
	} else {
		fmt.Printf("%s %s\n", mark, message)
	}
}
