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

// detailInputAction is what the detail view's text input will create on enter.
type detailInputAction int

const (
	inputNone detailInputAction = iota
	inputAddPhase
	inputAddTask
	inputAddSubTask
)

// detailRow addresses one visible line in the current phase. A subIdx of -1
// marks a task header row; otherwise the row is a subtask.
type detailRow struct {
	taskIdx int
	subIdx  int
}

// DetailModel is the roadmap detail screen: one phase at a time, with
// task/subtask rows and inline inputs for appending items.
type DetailModel struct {
	store   *store.Store
	roadmap roadmap.Roadmap

	phaseIdx  int
	rowCursor int

	input        textinput.Model
	inputAction  detailInputAction
	targetTaskID string

	statusMsg string
	width     int
	height    int

	statusBar components.StatusBar
}

// NewDetailModel creates a detail screen for the roadmap with the given id.
// An unknown id yields an empty screen; esc or backspace returns home.
func NewDetailModel(s *store.Store, roadmapID string) DetailModel {
	ti := textinput.New()
	ti.CharLimit = 120

	m := DetailModel{
		store:     s,
		input:     ti,
		statusBar: components.NewStatusBar(),
	}

	if r, err := s.Get(roadmapID); err == nil {
		m.roadmap = r
	}
	return m
}

func (m DetailModel) Init() tea.Cmd {
	return nil
}

// rows flattens the current phase into navigable lines.
func (m DetailModel) rows() []detailRow {
	if m.phaseIdx >= len(m.roadmap.Phases) {
		return nil
	}

	var rows []detailRow
	for ti, task := range m.roadmap.Phases[m.phaseIdx].Tasks {
		rows = append(rows, detailRow{taskIdx: ti, subIdx: -1})
		for si := range task.SubTasks {
			rows = append(rows, detailRow{taskIdx: ti, subIdx: si})
		}
	}
	return rows
}

func (m DetailModel) clampCursor() DetailModel {
	rows := m.rows()
	if m.rowCursor >= len(rows) {
		m.rowCursor = len(rows) - 1
	}
	if m.rowCursor < 0 {
		m.rowCursor = 0
	}
	return m
}

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.inputAction != inputNone {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m DetailModel) updateInput(msg tea.KeyMsg) (DetailModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputAction = inputNone
		m.input.Blur()
		m.input.SetValue("")
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return m, nil
		}
		m = m.applyInput(name)
		m.inputAction = inputNone
		m.input.Blur()
		m.input.SetValue("")
		return m.clampCursor(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m DetailModel) applyInput(name string) DetailModel {
	var (
		updated roadmap.Roadmap
		err     error
	)

	switch m.inputAction {
	case inputAddPhase:
		updated, err = m.store.AppendPhase(m.roadmap.ID, name)
		if err == nil {
			m.phaseIdx = len(updated.Phases) - 1
			m.rowCursor = 0
		}
	case inputAddTask:
		updated, err = m.store.AppendTask(m.roadmap.ID, m.roadmap.Phases[m.phaseIdx].ID, name)
	case inputAddSubTask:
		updated, err = m.store.AppendSubTask(m.roadmap.ID, m.targetTaskID, name)
	default:
		return m
	}

	if err != nil {
		m.statusMsg = fmt.Sprintf("Could not add: %v", err)
		return m
	}

	m.roadmap = updated
	m.statusMsg = ""
	return m
}

func (m DetailModel) updateBrowse(msg tea.KeyMsg) (DetailModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		return m, func() tea.Msg {
			return msgs.GoToHomeMsg{}
		}

	case "left", "h":
		if m.phaseIdx > 0 {
			m.phaseIdx--
			m.rowCursor = 0
		}

	case "right", "l":
		if m.phaseIdx < len(m.roadmap.Phases)-1 {
			m.phaseIdx++
			m.rowCursor = 0
		}

	case "up", "k":
		if m.rowCursor > 0 {
			m.rowCursor--
		}

	case "down", "j":
		if m.rowCursor < len(m.rows())-1 {
			m.rowCursor++
		}

	case "enter", " ":
		m = m.toggleSelected()

	case "p":
		m.inputAction = inputAddPhase
		m.input.Placeholder = "Phase name"
		m.input.Focus()
		return m, textinput.Blink

	case "t":
		if m.phaseIdx < len(m.roadmap.Phases) {
			m.inputAction = inputAddTask
			m.input.Placeholder = "Task name"
			m.input.Focus()
			return m, textinput.Blink
		}

	case "s":
		rows := m.rows()
		if m.rowCursor < len(rows) {
			task := m.roadmap.Phases[m.phaseIdx].Tasks[rows[m.rowCursor].taskIdx]
			m.targetTaskID = task.ID
			m.inputAction = inputAddSubTask
			m.input.Placeholder = fmt.Sprintf("Subtask for %q", task.Name)
			m.input.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m DetailModel) toggleSelected() DetailModel {
	rows := m.rows()
	if m.rowCursor >= len(rows) || rows[m.rowCursor].subIdx < 0 {
		return m
	}

	row := rows[m.rowCursor]
	phase := m.roadmap.Phases[m.phaseIdx]
	task := phase.Tasks[row.taskIdx]
	sub := task.SubTasks[row.subIdx]

	updated, err := m.store.ToggleSubTask(m.roadmap.ID, task.ID, sub.ID)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Could not toggle: %v", err)
		return m
	}

	m.roadmap = updated
	m.statusMsg = ""
	return m
}

func (m DetailModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.roadmap.Title))
	b.WriteString("\n")
	if m.roadmap.Description != "" {
		b.WriteString(styles.SubtleStyle.Render(m.roadmap.Description))
		b.WriteString("\n")
	}

	progress := components.NewProgress(m.roadmap.CompletedSubTasks(), m.roadmap.TotalSubTasks(), 30)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	if len(m.roadmap.Phases) == 0 {
		b.WriteString(styles.SubtleStyle.Render("No phases yet. Press p to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderPhaseTabs())
		b.WriteString("\n\n")
		b.WriteString(m.renderPhaseBody())
	}

	if m.inputAction != inputNone {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render("enter to add, esc to cancel"))
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar.Render(m.width, []string{
		"←/→ phase",
		"↑/↓ move",
		"enter toggle",
		"p/t/s add",
		"esc back",
	}))

	return b.String()
}

func (m DetailModel) renderPhaseTabs() string {
	var tabs []string
	for i, phase := range m.roadmap.Phases {
		label := phase.Name
		if i == m.phaseIdx {
			tabs = append(tabs, styles.PhaseStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, styles.SubtleStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (m DetailModel) renderPhaseBody() string {
	var b strings.Builder

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(styles.SubtleStyle.Render("No tasks in this phase. Press t to add one."))
		b.WriteString("\n")
		return b.String()
	}

	phase := m.roadmap.Phases[m.phaseIdx]
	for i, row := range rows {
		cursor := "  "
		if i == m.rowCursor {
			cursor = styles.SelectedStyle.Render("> ")
		}

		if row.subIdx < 0 {
			b.WriteString(cursor + styles.SelectedStyle.Render(phase.Tasks[row.taskIdx].Name))
		} else {
			sub := phase.Tasks[row.taskIdx].SubTasks[row.subIdx]
			mark := "[ ]"
			line := fmt.Sprintf("%s %s", mark, sub.Name)
			if sub.IsCompleted {
				line = styles.CompletedStyle.Render(fmt.Sprintf("[x] %s", sub.Name))
			}
			b.WriteString(cursor + "  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}
