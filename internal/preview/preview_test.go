package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monbon24/launcher/internal/models"
)

func TestAccentColor(t *testing.T) {
	assert.Equal(t, Pink, AccentColor(models.AccentPink))
	assert.Equal(t, Peach, AccentColor("PEACH"))
	assert.Equal(t, Default, AccentColor("chartreuse"))
	assert.Equal(t, Default, AccentColor(""))
}

func TestPageKeepsDeclarationOrder(t *testing.T) {
	out := Page(models.IndexPageData{
		Profile: models.Profile{Title: "Launchpad"},
		Tiles: []models.Tile{
			{Title: "Homeschool Planner", Href: "https://a.test", External: true},
			{Title: "Command Center", Href: "https://b.test", External: true},
			{Title: "Notes", Href: "/notes"},
		},
		Hub:    models.Hub{Title: "OneNote Hub", Href: "https://c.test"},
		Status: models.Status{State: models.StatusOnline},
	})

	planner := strings.Index(out, "Homeschool Planner")
	command := strings.Index(out, "Command Center")
	notes := strings.Index(out, "Notes")
	hub := strings.Index(out, "OneNote Hub")

	assert.True(t, planner >= 0 && command > planner, "first row should list tiles left to right")
	assert.Greater(t, notes, command)
	assert.Greater(t, hub, notes)
	assert.Contains(t, out, "Online")
}

func TestStatusLabel(t *testing.T) {
	assert.Contains(t, Status(models.Status{State: models.StatusOffline}), "Offline")
	assert.Contains(t, Status(models.Status{State: models.StatusOnline, Text: "Live"}), "Live")
}
