// Package roadmap defines the learning roadmap entity hierarchy:
// Roadmap → Phase → Task → SubTask. Every entity carries a UUID assigned
// at construction; contained collections preserve insertion order and are
// owned exclusively by their parent.
package roadmap

import "github.com/google/uuid"

// SubTask is the smallest trackable unit of a roadmap.
type SubTask struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsCompleted bool   `json:"isCompleted"`
}

// Task is a unit of work within a Phase. IsCompleted is not derived from
// subtask state; callers that want it consistent must maintain it.
type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	IsCompleted bool      `json:"isCompleted"`
	SubTasks    []SubTask `json:"subTasks"`
}

// Phase is an ordered stage of a Roadmap.
type Phase struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Roadmap is a top-level learning plan, a named tree of Phases.
type Roadmap struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageName   string  `json:"imageName"`
	Phases      []Phase `json:"phases"`
}

// NewSubTask creates a SubTask with a fresh ID and IsCompleted false.
func NewSubTask(name string) SubTask {
	return SubTask{ID: uuid.NewString(), Name: name}
}

// NewTask creates a Task with a fresh ID and the given subtasks.
func NewTask(name string, subTasks ...SubTask) Task {
	if subTasks == nil {
		subTasks = []SubTask{}
	}
	return Task{ID: uuid.NewString(), Name: name, SubTasks: subTasks}
}

// NewPhase creates a Phase with a fresh ID and the given tasks.
func NewPhase(name string, tasks ...Task) Phase {
	if tasks == nil {
		tasks = []Task{}
	}
	return Phase{ID: uuid.NewString(), Name: name, Tasks: tasks}
}

// New creates a Roadmap with a fresh ID and the given phases.
func New(title, description, imageName string, phases ...Phase) Roadmap {
	if phases == nil {
		phases = []Phase{}
	}
	return Roadmap{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		ImageName:   imageName,
		Phases:      phases,
	}
}

// Equal reports structural equality: same ID and same visible fields.
func (s SubTask) Equal(other SubTask) bool {
	return s.ID == other.ID && s.Name == other.Name && s.IsCompleted == other.IsCompleted
}

// Equal reports structural equality, recursing into subtasks.
func (t Task) Equal(other Task) bool {
	if t.ID != other.ID || t.Name != other.Name || t.IsCompleted != other.IsCompleted {
		return false
	}
	if len(t.SubTasks) != len(other.SubTasks) {
		return false
	}
	for i := range t.SubTasks {
		if !t.SubTasks[i].Equal(other.SubTasks[i]) {
			return false
		}
	}
	return true
}

// Equal reports structural equality, recursing into tasks.
func (p Phase) Equal(other Phase) bool {
	if p.ID != other.ID || p.Name != other.Name {
		return false
	}
	if len(p.Tasks) != len(other.Tasks) {
		return false
	}
	for i := range p.Tasks {
		if !p.Tasks[i].Equal(other.Tasks[i]) {
			return false
		}
	}
	return true
}

// Equal reports structural equality, recursing into phases.
func (r Roadmap) Equal(other Roadmap) bool {
	if r.ID != other.ID || r.Title != other.Title ||
		r.Description != other.Description || r.ImageName != other.ImageName {
		return false
	}
	if len(r.Phases) != len(other.Phases) {
		return false
	}
	for i := range r.Phases {
		if !r.Phases[i].Equal(other.Phases[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy. The store hands out clones so callers can
// never mutate its collection through a shared slice.
func (r Roadmap) Clone() Roadmap {
	out := r
	out.Phases = make([]Phase, len(r.Phases))
	for i, phase := range r.Phases {
		cp := phase
		cp.Tasks = make([]Task, len(phase.Tasks))
		for j, task := range phase.Tasks {
			ct := task
			ct.SubTasks = append([]SubTask(nil), task.SubTasks...)
			if ct.SubTasks == nil {
				ct.SubTasks = []SubTask{}
			}
			cp.Tasks[j] = ct
		}
		out.Phases[i] = cp
	}
	return out
}

// TotalSubTasks counts every subtask across all phases.
func (r Roadmap) TotalSubTasks() int {
	total := 0
	for _, phase := range r.Phases {
		for _, task := range phase.Tasks {
			total += len(task.SubTasks)
		}
	}
	return total
}

// CompletedSubTasks counts completed subtasks across all phases.
func (r Roadmap) CompletedSubTasks() int {
	completed := 0
	for _, phase := range r.Phases {
		for _, task := range phase.Tasks {
			for _, st := range task.SubTasks {
				if st.IsCompleted {
					completed++
				}
			}
		}
	}
	return completed
}

// Progress returns the completed fraction of subtasks in [0, 1].
// A roadmap with no subtasks has progress 0, never a division by zero.
func (r Roadmap) Progress() float64 {
	total := r.TotalSubTasks()
	if total == 0 {
		total = 1
	}
	return float64(r.CompletedSubTasks()) / float64(total)
}
