// Package store owns the authoritative roadmap collection and mirrors it
// to a single JSON file. Every mutation is durable before it returns.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
)

const roadmapsFileName = "roadmaps.json"

// ErrNotFound is returned when an id in a patch operation does not match
// any entity in the collection.
var ErrNotFound = errors.New("not found")

// Store holds the in-memory roadmap collection and its durable mirror.
// All access goes through the store; the mutex serializes the
// read-modify-write-persist sequence for concurrent callers.
type Store struct {
	dir string
	log zerolog.Logger

	mu       sync.Mutex
	roadmaps []roadmap.Roadmap
}

// Open loads the collection from dir/roadmaps.json. A missing file or an
// undecodable blob both degrade to an empty collection; Open only fails
// when the directory itself cannot be created.
func Open(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{dir: dir, log: log}
	s.roadmaps = s.load()
	return s, nil
}

// load reads the persisted blob, failing open to an empty collection.
func (s *Store) load() []roadmap.Roadmap {
	data, err := os.ReadFile(filepath.Join(s.dir, roadmapsFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Msg("could not read roadmaps file, starting empty")
		}
		return []roadmap.Roadmap{}
	}

	var roadmaps []roadmap.Roadmap
	if err := json.Unmarshal(data, &roadmaps); err != nil {
		s.log.Warn().Err(err).Msg("could not decode roadmaps file, starting empty")
		return []roadmap.Roadmap{}
	}

	s.log.Debug().Int("count", len(roadmaps)).Msg("loaded roadmaps")
	return roadmaps
}

// Initialize seeds the built-in template roadmaps and persists them, but
// only when the collection is empty after load. Subsequent runs are no-ops.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.roadmaps) > 0 {
		return nil
	}

	s.roadmaps = roadmap.BuiltinTemplates()
	s.log.Info().Int("count", len(s.roadmaps)).Msg("seeded built-in roadmaps")
	return s.save()
}

// save writes the full collection atomically. Callers must hold the lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.roadmaps, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal roadmaps: %w", err)
	}

	path := filepath.Join(s.dir, roadmapsFileName)
	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Roadmaps returns a deep copy of the collection in insertion order.
func (s *Store) Roadmaps() []roadmap.Roadmap {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]roadmap.Roadmap, len(s.roadmaps))
	for i, r := range s.roadmaps {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of roadmaps.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.roadmaps)
}

// Get returns a copy of the roadmap with the given id.
func (s *Store) Get(id string) (roadmap.Roadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.roadmaps {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return roadmap.Roadmap{}, ErrNotFound
}

// FindByTitle returns a copy of the first roadmap with an exactly
// matching title.
func (s *Store) FindByTitle(title string) (roadmap.Roadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.roadmaps {
		if r.Title == title {
			return r.Clone(), nil
		}
	}
	return roadmap.Roadmap{}, ErrNotFound
}

// Add appends the roadmap unless one with the same title already exists.
// The duplicate case is a deliberate dedup policy, not an error: Add
// reports false and leaves the collection untouched.
func (s *Store) Add(r roadmap.Roadmap) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.roadmaps {
		if existing.Title == r.Title {
			s.log.Debug().Str("title", r.Title).Msg("duplicate title, roadmap not added")
			return false, nil
		}
	}

	s.roadmaps = append(s.roadmaps, r.Clone())
	return true, s.save()
}

// Delete removes the roadmap with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.roadmaps {
		if r.ID == id {
			s.roadmaps = append(s.roadmaps[:i], s.roadmaps[i+1:]...)
			return s.save()
		}
	}
	return ErrNotFound
}

// Update replaces the collection entry whose id matches, in place.
func (s *Store) Update(r roadmap.Roadmap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.roadmaps {
		if existing.ID == r.ID {
			s.roadmaps[i] = r.Clone()
			return s.save()
		}
	}
	return ErrNotFound
}

// ToggleSubTask flips the completion flag of the subtask reached by
// walking roadmap → phase → task → subtask by id. It returns the updated
// roadmap so callers never hold a stale copy.
func (s *Store) ToggleSubTask(roadmapID, taskID, subTaskID string) (roadmap.Roadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.roadmaps {
		if s.roadmaps[i].ID != roadmapID {
			continue
		}
		r := &s.roadmaps[i]
		for p := range r.Phases {
			for t := range r.Phases[p].Tasks {
				if r.Phases[p].Tasks[t].ID != taskID {
					continue
				}
				for st := range r.Phases[p].Tasks[t].SubTasks {
					if r.Phases[p].Tasks[t].SubTasks[st].ID == subTaskID {
						sub := &r.Phases[p].Tasks[t].SubTasks[st]
						sub.IsCompleted = !sub.IsCompleted
						return r.Clone(), s.save()
					}
				}
			}
		}
		return roadmap.Roadmap{}, ErrNotFound
	}
	return roadmap.Roadmap{}, ErrNotFound
}

// AppendPhase appends a new phase with a fresh id to the roadmap.
func (s *Store) AppendPhase(roadmapID, name string) (roadmap.Roadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.roadmaps {
		if s.roadmaps[i].ID == roadmapID {
			s.roadmaps[i].Phases = append(s.roadmaps[i].Phases, roadmap.NewPhase(name))
			return s.roadmaps[i].Clone(), s.save()
		}
	}
	return roadmap.Roadmap{}, ErrNotFound
}

// AppendTask appends a new task with a fresh id to the given phase.
func (s *Store) AppendTask(roadmapID, phaseID, name string) (roadmap.Roadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.roadmaps {
		if s.roadmaps[i].ID != roadmapID {
			continue
		}
		r := &s.roadmaps[i]
		for p := range r.Phases {
			if r.Phases[p].ID == phaseID {
				r.Phases[p].Tasks = append(r.Phases[p].Tasks, roadmap.NewTask(name))
				return r.Clone(), s.save()
			}
		}
		return roadmap.Roadmap{}, ErrNotFound
	}
	return roadmap.Roadmap{}, ErrNotFound
}

// AppendSubTask appends a new subtask with a fresh id to the task found
// by searching every phase of the roadmap.
func (s *Store) AppendSubTask(roadmapID, taskID, name string) (roadmap.Roadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.roadmaps {
		if s.roadmaps[i].ID != roadmapID {
			continue
		}
		r := &s.roadmaps[i]
		for p := range r.Phases {
			for t := range r.Phases[p].Tasks {
				if r.Phases[p].Tasks[t].ID == taskID {
					r.Phases[p].Tasks[t].SubTasks = append(r.Phases[p].Tasks[t].SubTasks, roadmap.NewSubTask(name))
					return r.Clone(), s.save()
				}
			}
		}
		return roadmap.Roadmap{}, ErrNotFound
	}
	return roadmap.Roadmap{}, ErrNotFound
}
