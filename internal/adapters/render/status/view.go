package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/bella-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

// Snapshot is one health reading. Problem holds the failure line when no
// reading could be taken.
type Snapshot struct {
	Backend    string
	Health     domain.Health
	Problem    string
	CapturedAt time.Time
}

type RenderOptions struct {
	Now        time.Time
	StaleAfter time.Duration
}

func renderView(snapshot Snapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Bella backend"),
		s.header.Render("backend: " + snapshot.Backend),
	}

	if snapshot.Problem != "" {
		lines = append(lines, s.section.Render(s.warning.Render(snapshot.Problem)))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	metrics := []string{
		metricLine("CPU ", snapshot.Health.CPUPercent, s),
		metricLine("RAM ", snapshot.Health.MemPercent, s),
		metricLine("Disk", snapshot.Health.DiskPercent, s),
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, metrics...)))

	if footer := capturedLine(snapshot.CapturedAt, opts, s); footer != "" {
		lines = append(lines, footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func metricLine(label string, percent float64, s styles) string {
	used := clampPercent(percent)
	valueStyle := lipgloss.NewStyle().Foreground(interpolateColor(used, 0, 100))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.metricKey.Render(label),
		" ",
		renderProgressBar(used, barWidth, s),
		" ",
		valueStyle.Render(fmt.Sprintf("%5.1f%%", used)),
	)
}

func capturedLine(capturedAt time.Time, opts RenderOptions, s styles) string {
	if capturedAt.IsZero() {
		return ""
	}

	line := s.meta.Render("as of " + capturedAt.Format("15:04:05"))
	if opts.Now.IsZero() || opts.StaleAfter <= 0 {
		return line
	}
	if opts.Now.Sub(capturedAt) > opts.StaleAfter {
		line += " " + s.warning.Render("[stale]")
	}
	return line
}

func renderProgressBar(usedPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(usedPercent) / 100.0))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// interpolateColor maps value onto the 240..255 greyscale ramp, brightest at max.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
