package views

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ML-With-Roshan/TrackMap/internal/config"
	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
	"github.com/ML-With-Roshan/TrackMap/internal/store"
	"github.com/ML-With-Roshan/TrackMap/internal/tui/msgs"
)

func newGenerateFixture(t *testing.T) (*store.Store, GenerateModel) {
	t.Helper()
	s := newTestStore(t)
	return s, NewGenerateModel(config.Config{APIKey: "test-key"}, s, zerolog.Nop())
}

func TestGenerateModel_StartRequiresName(t *testing.T) {
	_, m := newGenerateFixture(t)

	m, cmd := m.startGeneration()
	if cmd != nil {
		t.Error("expected no command without a name")
	}
	if m.generating {
		t.Error("expected generating to stay false")
	}
	if m.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestGenerateModel_StartSetsGenerating(t *testing.T) {
	_, m := newGenerateFixture(t)
	m.name.SetValue("Go Concurrency")

	m, cmd := m.startGeneration()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if !m.generating {
		t.Error("expected generating true")
	}
}

func TestGenerateModel_CtrlGTriggersGeneration(t *testing.T) {
	_, m := newGenerateFixture(t)
	m.name.SetValue("Go Concurrency")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if cmd == nil {
		t.Fatal("expected a command from ctrl+g")
	}
	if !m.generating {
		t.Error("expected generating true")
	}
}

func TestGenerateModel_KeysIgnoredWhileGenerating(t *testing.T) {
	_, m := newGenerateFixture(t)
	m.name.SetValue("Go Concurrency")
	m, _ = m.startGeneration()

	m, _ = m.Update(keyRunes("x"))
	if got := m.name.Value(); got != "Go Concurrency" {
		t.Errorf("expected inputs frozen while generating, got %q", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("expected esc ignored while generating")
	}
}

func TestGenerateModel_ResultErrorShown(t *testing.T) {
	_, m := newGenerateFixture(t)
	m.generating = true

	m, cmd := m.Update(generateResultMsg{err: errors.New("network issue, please try again")})
	if cmd != nil {
		t.Error("expected no command on error")
	}
	if m.generating {
		t.Error("expected generating cleared")
	}
	if !strings.Contains(m.errMsg, "network issue") {
		t.Errorf("expected error shown, got %q", m.errMsg)
	}
}

func TestGenerateModel_ResultSavedAndReturnsHome(t *testing.T) {
	s, m := newGenerateFixture(t)
	m.generating = true

	r := roadmap.PreviewRoadmap("Go Concurrency", "")
	_, cmd := m.Update(generateResultMsg{roadmap: &r})
	if cmd == nil {
		t.Fatal("expected a command on success")
	}
	if _, ok := cmd().(msgs.GoToHomeMsg); !ok {
		t.Fatalf("expected GoToHomeMsg, got %T", cmd())
	}

	if _, err := s.FindByTitle("Go Concurrency"); err != nil {
		t.Errorf("expected generated roadmap saved: %v", err)
	}
}

func TestGenerateModel_ResultDuplicateTitleRejected(t *testing.T) {
	s, m := newGenerateFixture(t)
	mustAdd(t, s, sampleRoadmap("Go Concurrency"))
	m.generating = true

	r := roadmap.PreviewRoadmap("Go Concurrency", "")
	m, cmd := m.Update(generateResultMsg{roadmap: &r})
	if cmd != nil {
		t.Error("expected no command for duplicate")
	}
	if !strings.Contains(m.errMsg, "already exists") {
		t.Errorf("expected duplicate error, got %q", m.errMsg)
	}
	if s.Len() != 1 {
		t.Errorf("expected store unchanged, got %d roadmaps", s.Len())
	}
}

func TestGenerateModel_EscReturnsHome(t *testing.T) {
	_, m := newGenerateFixture(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(msgs.GoToHomeMsg); !ok {
		t.Errorf("expected GoToHomeMsg, got %T", cmd())
	}
}

func TestGenerateModel_View(t *testing.T) {
	_, m := newGenerateFixture(t)

	view := m.View()
	if !strings.Contains(view, "Generate Roadmap") {
		t.Error("expected view title")
	}

	m.generating = true
	if !strings.Contains(m.View(), "Generating your roadmap") {
		t.Error("expected in-flight indicator")
	}
}
