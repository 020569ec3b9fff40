// Package preview renders the launcher page as text for a terminal.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/monbon24/launcher/internal/models"
)

var (
	Pink     = lipgloss.Color("#f9c6d9")
	Lavender = lipgloss.Color("#d8c8f5")
	Mint     = lipgloss.Color("#c4ecd9")
	Peach    = lipgloss.Color("#fbd8c0")
	Default  = lipgloss.Color("#e4e2ec")
	Muted    = lipgloss.Color("#6e6785")
	Online   = lipgloss.Color("#34c77b")
	Offline  = lipgloss.Color("#e05a6a")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(Muted)
	mutedStyle    = lipgloss.NewStyle().Foreground(Muted)
	tileStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(38)
	hubStyle      = tileStyle.Border(lipgloss.DoubleBorder()).BorderForeground(Lavender).Width(78)
)

// AccentColor maps an accent onto the palette; unknown accents use Default.
func AccentColor(a models.Accent) lipgloss.Color {
	resolved, _ := models.ParseAccent(string(a))
	switch resolved {
	case models.AccentPink:
		return Pink
	case models.AccentLavender:
		return Lavender
	case models.AccentMint:
		return Mint
	case models.AccentPeach:
		return Peach
	default:
		return Default
	}
}

func Tile(t models.Tile) string {
	arrow := "→"
	if t.External {
		arrow = "↗"
	}
	head := titleStyle.Render(strings.TrimSpace(t.Icon+" "+t.Title)) + " " + mutedStyle.Render(arrow)
	body := lipgloss.JoinVertical(lipgloss.Left,
		head,
		mutedStyle.Render(t.Description),
		mutedStyle.Render(t.Href),
	)
	return tileStyle.BorderForeground(AccentColor(t.Accent)).Render(body)
}

func Hub(h models.Hub) string {
	head := titleStyle.Render(strings.TrimSpace(h.Icon+" "+h.Title)) + " " + lipgloss.NewStyle().Foreground(Online).Render("●") + " " + mutedStyle.Render("↗")
	return hubStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		head,
		mutedStyle.Render(h.Description),
		mutedStyle.Render(h.Href),
	))
}

func Status(s models.Status) string {
	dot := Offline
	if s.Online() {
		dot = Online
	}
	return lipgloss.NewStyle().Foreground(dot).Render("●") + " " + s.Label()
}

// Page lays tiles out two per row, like the tablet breakpoint.
func Page(data models.IndexPageData) string {
	var rows []string
	for i := 0; i < len(data.Tiles); i += 2 {
		row := []string{Tile(data.Tiles[i])}
		if i+1 < len(data.Tiles) {
			row = append(row, " ", Tile(data.Tiles[i+1]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	sections := []string{titleStyle.Render(strings.TrimSpace(data.Profile.BrandMark + " " + data.Profile.Title))}
	if data.Profile.Subtitle != "" {
		sections = append(sections, subtitleStyle.Render(data.Profile.Subtitle))
	}
	sections = append(sections, "")
	sections = append(sections, rows...)
	if data.Hub.Href != "" {
		sections = append(sections, Hub(data.Hub))
	}
	sections = append(sections, "", Status(data.Status))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}
