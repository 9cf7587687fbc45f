package ai

import (
	"encoding/json"
	"strings"

	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
)

// emptyRoadmapJSON is the degrade-to-empty fallback used when the reply
// contains no JSON object at all. Parse failures never hard-fail at the
// extraction layer.
const emptyRoadmapJSON = `{"phases": []}`

// generatedRoadmap mirrors the JSON shape the prompt asks the model for:
// names only, no ids, no completion state.
type generatedRoadmap struct {
	Phases []generatedPhase `json:"phases"`
}

type generatedPhase struct {
	Name  string          `json:"name"`
	Tasks []generatedTask `json:"tasks"`
}

type generatedTask struct {
	Name     string             `json:"name"`
	SubTasks []generatedSubTask `json:"subTasks"`
}

type generatedSubTask struct {
	Name string `json:"name"`
}

// extractRoadmapJSON pulls the roadmap JSON object out of potentially
// noisy model output. Markdown fences are stripped first; if the result
// is not already a JSON object, top-level {...} spans are located by
// brace matching, preferring the largest valid span (the last one on
// ties). Text with no brace pair at all degrades to an empty roadmap.
func extractRoadmapJSON(text string) string {
	s := stripMarkdownFences(text)

	if strings.HasPrefix(s, "{") && json.Valid([]byte(s)) {
		return s
	}

	var best string
	var fallback string
	depth := 0
	start := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				candidate := s[start : i+1]
				if len(candidate) >= len(fallback) {
					fallback = candidate
				}
				if json.Valid([]byte(candidate)) && len(candidate) >= len(best) {
					best = candidate
				}
			}
		}
	}

	if best != "" {
		return best
	}
	if fallback != "" {
		// Invalid JSON between braces; let the decoder report the shape
		// mismatch rather than masking it with an empty roadmap.
		return fallback
	}
	return emptyRoadmapJSON
}

// stripMarkdownFences removes ```json / ``` markers around a reply.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if cut, found := strings.CutPrefix(s, "```json"); found {
		s = cut
	} else if cut, found := strings.CutPrefix(s, "```"); found {
		s = cut
	}
	if cut, found := strings.CutSuffix(s, "```"); found {
		s = cut
	}
	return strings.TrimSpace(s)
}

// hydrate maps the decoded, unidentified structure into a full Roadmap:
// a fresh id for every entity and every completion flag forced to false.
func hydrate(name, description string, gen generatedRoadmap) roadmap.Roadmap {
	if description == "" {
		description = "AI-generated roadmap for " + name
	}

	phases := make([]roadmap.Phase, 0, len(gen.Phases))
	for _, gp := range gen.Phases {
		tasks := make([]roadmap.Task, 0, len(gp.Tasks))
		for _, gt := range gp.Tasks {
			subTasks := make([]roadmap.SubTask, 0, len(gt.SubTasks))
			for _, gs := range gt.SubTasks {
				subTasks = append(subTasks, roadmap.NewSubTask(gs.Name))
			}
			tasks = append(tasks, roadmap.NewTask(gt.Name, subTasks...))
		}
		phases = append(phases, roadmap.NewPhase(gp.Name, tasks...))
	}

	return roadmap.New(name, description, "sparkles", phases...)
}
