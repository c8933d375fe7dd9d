package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color Palette (Dracula-inspired)
var (
	colorGreen = lipgloss.Color("#50FA7B")
	colorRed   = lipgloss.Color("#FF5555")
	colorCyan  = lipgloss.Color("#8BE9FD")
	colorGray  = lipgloss.Color("#6272A4")
)

var (
	stepStyle    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(colorGray)
)

// Out is where progress output goes. Tests redirect it to keep output clean.
var Out io.Writer = os.Stdout

// Step prints the heading for a pipeline stage.
func Step(name string) {
	fmt.Fprintln(Out, stepStyle.Render("==> "+name))
}

// Detail prints a dim per-operation line (created dir, written file, ...).
func Detail(format string, args ...interface{}) {
	fmt.Fprintln(Out, detailStyle.Render("    "+fmt.Sprintf(format, args...)))
}

// Success prints a green confirmation line.
func Success(msg string) {
	fmt.Fprintln(Out, successStyle.Render(" "+msg))
}

// Error prints a red failure line to stderr.
func Error(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(" "+msg))
}
