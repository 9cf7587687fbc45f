package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ML-With-Roshan/TrackMap/internal/config"
	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
	"github.com/ML-With-Roshan/TrackMap/internal/store"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/msgs"
)

func newTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	s, err := store.Open(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return initialModel(config.Config{}, s, zerolog.Nop()), s
}

func updateModel(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return model, cmd
}

func TestInitialModel_StartsAtHome(t *testing.T) {
	m, _ := newTestModel(t)
	if m.currentView != ViewHome {
		t.Errorf("expected ViewHome, got %d", m.currentView)
	}
}

func TestModel_RoutesViewTransitions(t *testing.T) {
	m, s := newTestModel(t)

	r := roadmap.NewEmptyRoadmap("Routing", "", "")
	if _, err := s.Add(r); err != nil {
		t.Fatalf("failed to add roadmap: %v", err)
	}

	m, _ = updateModel(t, m, msgs.GoToNewRoadmapMsg{})
	if m.currentView != ViewNewRoadmap {
		t.Errorf("expected ViewNewRoadmap, got %d", m.currentView)
	}

	m, _ = updateModel(t, m, msgs.GoToGenerateMsg{})
	if m.currentView != ViewGenerate {
		t.Errorf("expected ViewGenerate, got %d", m.currentView)
	}

	m, _ = updateModel(t, m, msgs.OpenRoadmapMsg{RoadmapID: r.ID})
	if m.currentView != ViewDetail {
		t.Errorf("expected ViewDetail, got %d", m.currentView)
	}

	m, _ = updateModel(t, m, msgs.GoToHomeMsg{})
	if m.currentView != ViewHome {
		t.Errorf("expected ViewHome, got %d", m.currentView)
	}
}

func TestModel_HomeReloadsRoadmapsOnReturn(t *testing.T) {
	m, s := newTestModel(t)

	if _, err := s.Add(roadmap.NewEmptyRoadmap("Added Later", "", "")); err != nil {
		t.Fatalf("failed to add roadmap: %v", err)
	}

	m, _ = updateModel(t, m, msgs.GoToHomeMsg{})
	if !strings.Contains(m.View(), "Added Later") {
		t.Error("expected home to show the newly added roadmap")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command from q on home")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}

	m, _ = updateModel(t, m, msgs.GoToNewRoadmapMsg{})
	_, cmd = updateModel(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command from ctrl+c")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestModel_QTypesIntoForms(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = updateModel(t, m, msgs.GoToNewRoadmapMsg{})

	_, cmd := updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("expected q to type into the form, not quit")
		}
	}
}

func TestModel_WindowSizePropagates(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.height != 40 {
		t.Errorf("expected size recorded, got %dx%d", m.width, m.height)
	}
}
