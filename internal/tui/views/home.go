// Package views contains the TUI screens.
package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
	"github.com/ML-With-Roshan/TrackMap/internal/store"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/components"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/msgs"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/styles"
)

// HomeModel is the roadmap list screen.
type HomeModel struct {
	store    *store.Store
	roadmaps []roadmap.Roadmap
	cursor   int
	width    int
	height   int

	confirmDelete bool
	statusMsg     string

	statusBar components.StatusBar
}

// NewHomeModel creates the home screen, loading the current roadmaps.
func NewHomeModel(s *store.Store) HomeModel {
	return HomeModel{
		store:     s,
		roadmaps:  s.Roadmaps(),
		statusBar: components.NewStatusBar(),
	}
}

func (m HomeModel) Init() tea.Cmd {
	return nil
}

func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		// A pending delete confirmation captures the next key.
		if m.confirmDelete {
			switch msg.String() {
			case "d", "y":
				m = m.deleteSelected()
			default:
				m.confirmDelete = false
				m.statusMsg = ""
			}
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.statusMsg = ""

		case "down", "j":
			if m.cursor < len(m.roadmaps)-1 {
				m.cursor++
			}
			m.statusMsg = ""

		case "enter":
			if len(m.roadmaps) > 0 {
				id := m.roadmaps[m.cursor].ID
				return m, func() tea.Msg {
					return msgs.OpenRoadmapMsg{RoadmapID: id}
				}
			}

		case "n":
			return m, func() tea.Msg {
				return msgs.GoToNewRoadmapMsg{}
			}

		case "g":
			return m, func() tea.Msg {
				return msgs.GoToGenerateMsg{}
			}

		case "d":
			if len(m.roadmaps) > 0 {
				m.confirmDelete = true
				m.statusMsg = fmt.Sprintf("Delete %q? Press d again to confirm, any other key to cancel.", m.roadmaps[m.cursor].Title)
			}
		}
	}

	return m, nil
}

func (m HomeModel) deleteSelected() HomeModel {
	m.confirmDelete = false
	if len(m.roadmaps) == 0 {
		return m
	}

	title := m.roadmaps[m.cursor].Title
	if err := m.store.Delete(m.roadmaps[m.cursor].ID); err != nil {
		m.statusMsg = fmt.Sprintf("Could not delete: %v", err)
		return m
	}

	m.roadmaps = m.store.Roadmaps()
	if m.cursor >= len(m.roadmaps) && m.cursor > 0 {
		m.cursor = len(m.roadmaps) - 1
	}
	m.statusMsg = fmt.Sprintf("Deleted %q.", title)
	return m
}

func (m HomeModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("TrackMap"))
	b.WriteString("\n\n")

	if len(m.roadmaps) == 0 {
		b.WriteString(styles.SubtleStyle.Render("No roadmaps yet. Press n to create one or g to generate one with AI."))
		b.WriteString("\n")
	}

	for i, r := range m.roadmaps {
		progress := components.NewProgress(r.CompletedSubTasks(), r.TotalSubTasks(), 20)
		line := fmt.Sprintf("%s  %s", r.Title, styles.SubtleStyle.Render(progress.View()))

		if i == m.cursor {
			b.WriteString(styles.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		if m.confirmDelete {
			b.WriteString(styles.ErrorStyle.Render(m.statusMsg))
		} else {
			b.WriteString(styles.SubtleStyle.Render(m.statusMsg))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar.Render(m.width, []string{
		"↑/↓ navigate",
		"enter open",
		"n new",
		"g generate",
		"d delete",
		"q quit",
	}))

	return b.String()
}
