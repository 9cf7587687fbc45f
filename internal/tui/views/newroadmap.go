package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
	"github.com/ML-With-Roshan/TrackMap/internal/store"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/components"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/msgs"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/styles"
)

// roadmapIcons are the selectable icon names for a new roadmap.
var roadmapIcons = []string{
	"star.fill",
	"sparkles",
	"book.fill",
	"laptopcomputer",
	"chart.line.uptrend.xyaxis",
	"brain.head.profile",
}

// NewRoadmapModel is the form for creating an empty roadmap by hand.
type NewRoadmapModel struct {
	store *store.Store

	title       textinput.Model
	description textinput.Model
	focus       int // 0 title, 1 description, 2 icon picker
	iconIdx     int

	errMsg string
	width  int
	height int

	statusBar components.StatusBar
}

// NewNewRoadmapModel creates the new-roadmap form with the title focused.
func NewNewRoadmapModel(s *store.Store) NewRoadmapModel {
	title := textinput.New()
	title.Placeholder = "Roadmap title"
	title.CharLimit = 120
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.CharLimit = 200

	return NewRoadmapModel{
		store:       s,
		title:       title,
		description: description,
		statusBar:   components.NewStatusBar(),
	}
}

func (m NewRoadmapModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m NewRoadmapModel) Update(msg tea.Msg) (NewRoadmapModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return msgs.GoToHomeMsg{}
			}

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				m.focus = (m.focus + 1) % 3
			} else {
				m.focus = (m.focus + 2) % 3
			}
			return m.applyFocus(), nil

		case "enter":
			if m.focus < 2 {
				m.focus++
				return m.applyFocus(), nil
			}
			return m.submit()

		case "left", "right":
			if m.focus == 2 {
				if msg.String() == "left" {
					m.iconIdx = (m.iconIdx + len(roadmapIcons) - 1) % len(roadmapIcons)
				} else {
					m.iconIdx = (m.iconIdx + 1) % len(roadmapIcons)
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.title, cmd = m.title.Update(msg)
	case 1:
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

func (m NewRoadmapModel) applyFocus() NewRoadmapModel {
	m.title.Blur()
	m.description.Blur()
	switch m.focus {
	case 0:
		m.title.Focus()
	case 1:
		m.description.Focus()
	}
	return m
}

func (m NewRoadmapModel) submit() (NewRoadmapModel, tea.Cmd) {
	title := strings.TrimSpace(m.title.Value())
	if title == "" {
		m.errMsg = "A title is required."
		return m, nil
	}

	r := roadmap.NewEmptyRoadmap(title, strings.TrimSpace(m.description.Value()), roadmapIcons[m.iconIdx])
	added, err := m.store.Add(r)
	if err != nil {
		m.errMsg = fmt.Sprintf("Could not save: %v", err)
		return m, nil
	}
	if !added {
		m.errMsg = fmt.Sprintf("A roadmap titled %q already exists.", title)
		return m, nil
	}

	return m, func() tea.Msg {
		return msgs.GoToHomeMsg{}
	}
}

func (m NewRoadmapModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("New Roadmap"))
	b.WriteString("\n\n")

	b.WriteString(m.title.View())
	b.WriteString("\n")
	b.WriteString(m.description.View())
	b.WriteString("\n\n")

	b.WriteString("Icon: ")
	for i, icon := range roadmapIcons {
		if i == m.iconIdx {
			if m.focus == 2 {
				b.WriteString(styles.SelectedStyle.Render("[" + icon + "]"))
			} else {
				b.WriteString("[" + icon + "]")
			}
		} else {
			b.WriteString(styles.SubtleStyle.Render(" " + icon + " "))
		}
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar.Render(m.width, []string{
		"tab next field",
		"←/→ icon",
		"enter create",
		"esc cancel",
	}))

	return b.String()
}
