// Package report prints what a migration run changed.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/sketch-hq/color-variables-migrator/internal/migrate"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Render writes a summary of res to w. Created swatches are listed with a
// chip painted in their color.
func Render(w io.Writer, res *migrate.Result) error {
	_, err := io.WriteString(w, String(res))
	return err
}

// String returns the summary Render writes.
func String(res *migrate.Result) string {
	var sb strings.Builder

	switch res.State {
	case migrate.Done:
		sb.WriteString(headerStyle.Render(migrate.CompletedMessage))
	case migrate.Cancelled:
		sb.WriteString(warnStyle.Render(migrate.CancelledMessage))
		sb.WriteString("\n")
		return sb.String()
	default:
		sb.WriteString(warnStyle.Render("Migration stopped while " + res.State.String()))
	}
	sb.WriteString("\n")

	counts := []struct {
		label string
		n     int
	}{
		{"layer colors replaced", res.LayerSlots},
		{"style colors replaced", res.StyleSlots},
		{"instances synced", res.InstancesSynced},
		{"styles removed", len(res.StylesRemoved)},
		{"swatches created", len(res.SwatchesCreated)},
	}
	for _, c := range counts {
		fmt.Fprintf(&sb, "  %4d %s\n", c.n, mutedStyle.Render(c.label))
	}

	if len(res.StylesRemoved) > 0 {
		sb.WriteString("\n")
		sb.WriteString(mutedStyle.Render("  Removed styles"))
		sb.WriteString("\n")
		for _, s := range res.StylesRemoved {
			fmt.Fprintf(&sb, "    %s\n", s.Name)
		}
	}

	if len(res.SwatchesCreated) > 0 {
		sb.WriteString("\n")
		sb.WriteString(mutedStyle.Render("  New swatches"))
		sb.WriteString("\n")
		for _, s := range res.SwatchesCreated {
			fmt.Fprintf(&sb, "    %s %s %s\n", chip(s.Color), s.Name, mutedStyle.Render(s.Color.Hex()))
		}
	}

	return sb.String()
}

// chip renders a small block painted in c. Alpha is dropped.
func chip(c color.Color) string {
	bg := color.RGB(c.R, c.G, c.B).Hex()
	fg := "#FFFFFF"
	if color.IsLight(c) {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render("  ")
}
