package views

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ML-With-Roshan/TrackMap/internal/ai"
	"github.com/ML-With-Roshan/TrackMap/internal/config"
	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
	"github.com/ML-With-Roshan/TrackMap/internal/store"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/components"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/msgs"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/styles"
)

// generateResultMsg carries the outcome of an AI generation request.
type generateResultMsg struct {
	roadmap *roadmap.Roadmap
	err     error
}

// GenerateModel is the AI roadmap generator screen. While a request is in
// flight the inputs and the trigger are disabled and a spinner runs.
type GenerateModel struct {
	cfg   config.Config
	store *store.Store
	log   zerolog.Logger

	name        textinput.Model
	description textinput.Model
	goal        textarea.Model
	focus       int // 0 name, 1 description, 2 goal
	spinner     spinner.Model

	generating bool
	errMsg     string
	width      int
	height     int

	statusBar components.StatusBar
}

// NewGenerateModel creates the generator screen with the name field focused.
func NewGenerateModel(cfg config.Config, s *store.Store, log zerolog.Logger) GenerateModel {
	name := textinput.New()
	name.Placeholder = "Topic, e.g. iOS Development"
	name.CharLimit = 120
	name.Focus()

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.CharLimit = 200

	goal := textarea.New()
	goal.Placeholder = "What do you want to achieve?"
	goal.SetHeight(4)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SelectedStyle

	return GenerateModel{
		cfg:         cfg,
		store:       s,
		log:         log,
		name:        name,
		description: description,
		goal:        goal,
		spinner:     sp,
		statusBar:   components.NewStatusBar(),
	}
}

func (m GenerateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m GenerateModel) Update(msg tea.Msg) (GenerateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.generating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case generateResultMsg:
		m.generating = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}

		added, err := m.store.Add(*msg.roadmap)
		if err != nil {
			m.errMsg = fmt.Sprintf("Could not save: %v", err)
			return m, nil
		}
		if !added {
			m.errMsg = fmt.Sprintf("A roadmap titled %q already exists.", msg.roadmap.Title)
			return m, nil
		}
		return m, func() tea.Msg {
			return msgs.GoToHomeMsg{}
		}

	case tea.KeyMsg:
		// No edits or re-triggers while a request is in flight.
		if m.generating {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return msgs.GoToHomeMsg{}
			}

		case "tab":
			m.focus = (m.focus + 1) % 3
			return m.applyFocus()

		case "shift+tab":
			m.focus = (m.focus + 2) % 3
			return m.applyFocus()

		case "ctrl+g":
			return m.startGeneration()
		}
	}

	if m.generating {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.name, cmd = m.name.Update(msg)
	case 1:
		m.description, cmd = m.description.Update(msg)
	case 2:
		m.goal, cmd = m.goal.Update(msg)
	}
	return m, cmd
}

func (m GenerateModel) applyFocus() (GenerateModel, tea.Cmd) {
	m.name.Blur()
	m.description.Blur()
	m.goal.Blur()

	switch m.focus {
	case 0:
		m.name.Focus()
	case 1:
		m.description.Focus()
	case 2:
		return m, m.goal.Focus()
	}
	return m, nil
}

func (m GenerateModel) startGeneration() (GenerateModel, tea.Cmd) {
	name := strings.TrimSpace(m.name.Value())
	if name == "" {
		m.errMsg = "A topic name is required."
		return m, nil
	}

	description := strings.TrimSpace(m.description.Value())
	goal := strings.TrimSpace(m.goal.Value())
	if goal == "" {
		goal = name
	}

	m.generating = true
	m.errMsg = ""

	generate := func() tea.Msg {
		if os.Getenv("TRACKMAP_PREVIEW") == "true" {
			preview := roadmap.PreviewRoadmap(name, description)
			return generateResultMsg{roadmap: &preview}
		}

		client := ai.NewClient(m.cfg, m.log)
		r, err := client.GenerateRoadmap(context.Background(), name, description, goal)
		return generateResultMsg{roadmap: r, err: err}
	}

	return m, tea.Batch(m.spinner.Tick, generate)
}

func (m GenerateModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Generate Roadmap"))
	b.WriteString("\n\n")

	b.WriteString(m.name.View())
	b.WriteString("\n")
	b.WriteString(m.description.View())
	b.WriteString("\n\n")
	b.WriteString(m.goal.View())
	b.WriteString("\n")

	if m.generating {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Generating your roadmap...")
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar.Render(m.width, []string{
		"tab next field",
		"ctrl+g generate",
		"esc cancel",
	}))

	return b.String()
}
