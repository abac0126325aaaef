// Package ui renders the operator-facing banner and summaries.
package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorPrimary = lipgloss.Color("#20B9B4")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

// Styles groups the lipgloss styles used by the CLI.
var Styles = struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
	ErrBox  lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
	Label:   lipgloss.NewStyle().Foreground(colorPrimary),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Success: lipgloss.NewStyle().Foreground(colorSuccess),
	Warning: lipgloss.NewStyle().Foreground(colorWarning),
	Error:   lipgloss.NewStyle().Foreground(colorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(0, 1),
	ErrBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorError).
		Padding(0, 1),
}

// Banner describes a search about to start.
type Banner struct {
	Target     string
	IgnoreCase bool
	KeyType    string
	Cores      int
	Workers    int
	Difficulty float64
}

// Render returns the banner text.
func (b Banner) Render() string {
	mode := "case-sensitive"
	if b.IgnoreCase {
		mode = "case-insensitive"
	}
	lines := []string{
		fmt.Sprintf("Searching for %s key containing: %s (%s)",
			b.KeyType, Styles.Title.Render(b.Target), mode),
		fmt.Sprintf("Using %d cores, %d workers", b.Cores, b.Workers),
		Styles.Muted.Render("Expected attempts: " + FormatDifficulty(b.Difficulty)),
	}
	return strings.Join(lines, "\n")
}

// Summary describes a found key.
type Summary struct {
	Attempts       uint64
	TotalAttempts  uint64
	PrivateKeyPath string
	PublicKeyPath  string
	PublicKey      string
	Elapsed        string
}

// Render returns the boxed success summary.
func (s Summary) Render() string {
	rows := []string{
		Styles.Success.Render(fmt.Sprintf("✓ Match found after %s attempts!", humanize.Comma(int64(s.Attempts)))),
		"",
		label("Keys written to") + s.PrivateKeyPath + " and " + s.PublicKeyPath,
		label("Public key") + strings.TrimSpace(s.PublicKey),
		label("Total attempts") + humanize.Comma(int64(s.TotalAttempts)),
	}
	if s.Elapsed != "" {
		rows = append(rows, label("Elapsed")+s.Elapsed)
	}
	return Styles.Box.Render(strings.Join(rows, "\n"))
}

// Interrupted renders the cancellation message.
func Interrupted(attempts uint64) string {
	return Styles.Warning.Render(fmt.Sprintf("Search interrupted after %s attempts", humanize.Comma(int64(attempts))))
}

// Failure renders a fatal error.
func Failure(err error) string {
	return Styles.ErrBox.Render(Styles.Error.Render("✗ ") + err.Error())
}

// FormatDifficulty renders an attempt estimate, "impossible" for +Inf.
func FormatDifficulty(d float64) string {
	switch {
	case math.IsInf(d, 1) || math.IsNaN(d):
		return "impossible"
	case d < 1e15:
		return humanize.Comma(int64(math.Ceil(d)))
	default:
		return fmt.Sprintf("%.2e", d)
	}
}

func label(s string) string {
	return Styles.Label.Render(s+":") + " "
}
