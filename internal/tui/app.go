// Package tui implements the interactive terminal UI.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ML-With-Roshan/TrackMap/internal/config"
	"github.com/ML-With-Roshan/TrackMap/internal/store"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/msgs"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewHome View = iota
	ViewDetail
	ViewNewRoadmap
	ViewGenerate
)

// Model is the main Bubble Tea model that routes messages to the active view.
type Model struct {
	currentView View
	width       int
	height      int

	home       views.HomeModel
	detail     views.DetailModel
	newRoadmap views.NewRoadmapModel
	generate   views.GenerateModel

	cfg   config.Config
	store *store.Store
	log   zerolog.Logger
}

// Run starts the TUI application.
func Run(cfg config.Config, s *store.Store, log zerolog.Logger) error {
	p := tea.NewProgram(
		initialModel(cfg, s, log),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func initialModel(cfg config.Config, s *store.Store, log zerolog.Logger) Model {
	return Model{
		currentView: ViewHome,
		home:        views.NewHomeModel(s),
		cfg:         cfg,
		store:       s,
		log:         log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.home.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Every view tracks its own size; fan the message out.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		cmds = append(cmds, cmd)
		m.detail, cmd = m.detail.Update(msg)
		cmds = append(cmds, cmd)
		m.newRoadmap, cmd = m.newRoadmap.Update(msg)
		cmds = append(cmds, cmd)
		m.generate, cmd = m.generate.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Only the home list treats q as quit; forms need the letter.
			if m.currentView == ViewHome {
				return m, tea.Quit
			}
		}

	case msgs.GoToHomeMsg:
		m.currentView = ViewHome
		m.home = views.NewHomeModel(m.store)
		return m.resized(), m.home.Init()

	case msgs.OpenRoadmapMsg:
		m.currentView = ViewDetail
		m.detail = views.NewDetailModel(m.store, msg.RoadmapID)
		return m.resized(), m.detail.Init()

	case msgs.GoToNewRoadmapMsg:
		m.currentView = ViewNewRoadmap
		m.newRoadmap = views.NewNewRoadmapModel(m.store)
		return m.resized(), m.newRoadmap.Init()

	case msgs.GoToGenerateMsg:
		m.currentView = ViewGenerate
		m.generate = views.NewGenerateModel(m.cfg, m.store, m.log)
		return m.resized(), m.generate.Init()
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewHome:
		m.home, cmd = m.home.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewNewRoadmap:
		m.newRoadmap, cmd = m.newRoadmap.Update(msg)
	case ViewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	}
	return m, cmd
}

// resized replays the last known window size to the freshly created view.
func (m Model) resized() Model {
	if m.width == 0 && m.height == 0 {
		return m
	}

	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	switch m.currentView {
	case ViewHome:
		m.home, _ = m.home.Update(size)
	case ViewDetail:
		m.detail, _ = m.detail.Update(size)
	case ViewNewRoadmap:
		m.newRoadmap, _ = m.newRoadmap.Update(size)
	case ViewGenerate:
		m.generate, _ = m.generate.Update(size)
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case ViewDetail:
		return m.detail.View()
	case ViewNewRoadmap:
		return m.newRoadmap.View()
	case ViewGenerate:
		return m.generate.View()
	default:
		return m.home.View()
	}
}
