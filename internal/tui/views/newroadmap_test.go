package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ML-With-Roshan/TrackMap/internal/tui/msgs"
)

func TestNewRoadmapModel_SubmitCreatesRoadmap(t *testing.T) {
	s := newTestStore(t)
	m := NewNewRoadmapModel(s)

	m.title.SetValue("Rust Basics")
	m.description.SetValue("Learn the borrow checker")
	m.focus = 2

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from submit")
	}
	if _, ok := cmd().(msgs.GoToHomeMsg); !ok {
		t.Fatalf("expected GoToHomeMsg, got %T", cmd())
	}

	r, err := s.FindByTitle("Rust Basics")
	if err != nil {
		t.Fatalf("expected roadmap in store: %v", err)
	}
	if r.Description != "Learn the borrow checker" {
		t.Errorf("unexpected description %q", r.Description)
	}
	if len(r.Phases) != 0 {
		t.Errorf("expected empty roadmap, got %d phases", len(r.Phases))
	}
}

func TestNewRoadmapModel_EmptyTitleRejected(t *testing.T) {
	m := NewNewRoadmapModel(newTestStore(t))
	m.focus = 2

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for empty title")
	}
	if m.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestNewRoadmapModel_DuplicateTitleRejected(t *testing.T) {
	s := newTestStore(t)
	mustAdd(t, s, sampleRoadmap("Taken"))

	m := NewNewRoadmapModel(s)
	m.title.SetValue("Taken")
	m.focus = 2

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for duplicate title")
	}
	if !strings.Contains(m.errMsg, "already exists") {
		t.Errorf("expected duplicate error, got %q", m.errMsg)
	}
	if s.Len() != 1 {
		t.Errorf("expected store unchanged, got %d roadmaps", s.Len())
	}
}

func TestNewRoadmapModel_TabCyclesFocus(t *testing.T) {
	m := NewNewRoadmapModel(newTestStore(t))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 1 {
		t.Errorf("expected focus 1, got %d", m.focus)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 2 {
		t.Errorf("expected focus 2, got %d", m.focus)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 {
		t.Errorf("expected focus wrapped to 0, got %d", m.focus)
	}
}

func TestNewRoadmapModel_IconPicker(t *testing.T) {
	m := NewNewRoadmapModel(newTestStore(t))
	m.focus = 2

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.iconIdx != 1 {
		t.Errorf("expected icon index 1, got %d", m.iconIdx)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.iconIdx != len(roadmapIcons)-1 {
		t.Errorf("expected icon index to wrap, got %d", m.iconIdx)
	}
}

func TestNewRoadmapModel_EscReturnsHome(t *testing.T) {
	m := NewNewRoadmapModel(newTestStore(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(msgs.GoToHomeMsg); !ok {
		t.Errorf("expected GoToHomeMsg, got %T", cmd())
	}
}
