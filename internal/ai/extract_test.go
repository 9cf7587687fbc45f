package ai

import (
	"encoding/json"
	"testing"
)

func TestExtractRoadmapJSON(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare object",
			text: `{"phases":[]}`,
			want: `{"phases":[]}`,
		},
		{
			name: "object with surrounding commentary",
			text: `Sure! Here you go: {"phases":[]} Hope that helps.`,
			want: `{"phases":[]}`,
		},
		{
			name: "markdown fenced",
			text: "```json\n{\"phases\":[]}\n```",
			want: `{"phases":[]}`,
		},
		{
			name: "plain fence",
			text: "```\n{\"phases\":[]}\n```",
			want: `{"phases":[]}`,
		},
		{
			name: "prefers the largest object",
			text: `{"a":1} and then {"phases":[{"name":"P1","tasks":[]}]}`,
			want: `{"phases":[{"name":"P1","tasks":[]}]}`,
		},
		{
			name: "ties go to the last object",
			text: `{"a":1} {"b":2}`,
			want: `{"b":2}`,
		},
		{
			name: "nested braces stay in one candidate",
			text: `Note: {"phases":[{"name":"P","tasks":[{"name":"T","subTasks":[]}]}]} done`,
			want: `{"phases":[{"name":"P","tasks":[{"name":"T","subTasks":[]}]}]}`,
		},
		{
			name: "no braces at all degrades to empty roadmap",
			text: "I could not produce a roadmap, sorry.",
			want: `{"phases": []}`,
		},
		{
			name: "empty string degrades to empty roadmap",
			text: "",
			want: `{"phases": []}`,
		},
		{
			name: "stray closing brace before object",
			text: `} {"phases":[]}`,
			want: `{"phases":[]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractRoadmapJSON(tc.text)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractKeepsInvalidCandidateForDecoder(t *testing.T) {
	// Braces exist but the content is not valid JSON: the extractor hands
	// it through so the decode step can surface a parse failure.
	got := extractRoadmapJSON("result: {not json}")
	if got != "{not json}" {
		t.Errorf("got %q, want %q", got, "{not json}")
	}
	if json.Valid([]byte(got)) {
		t.Error("candidate should be invalid JSON")
	}
}

func TestHydrate(t *testing.T) {
	gen := generatedRoadmap{
		Phases: []generatedPhase{
			{
				Name: "P1",
				Tasks: []generatedTask{
					{Name: "T1", SubTasks: []generatedSubTask{{Name: "S1"}, {Name: "S2"}}},
				},
			},
			{Name: "P2"},
		},
	}

	r := hydrate("Go", "", gen)

	if r.Title != "Go" {
		t.Errorf("got title %q, want %q", r.Title, "Go")
	}
	if r.Description != "AI-generated roadmap for Go" {
		t.Errorf("got description %q", r.Description)
	}
	if r.ImageName != "sparkles" {
		t.Errorf("got image %q, want sparkles", r.ImageName)
	}
	if len(r.Phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(r.Phases))
	}
	if r.Phases[0].Name != "P1" || r.Phases[1].Name != "P2" {
		t.Errorf("phase names not preserved: %q, %q", r.Phases[0].Name, r.Phases[1].Name)
	}
	if len(r.Phases[1].Tasks) != 0 {
		t.Errorf("empty phase should have zero tasks, got %d", len(r.Phases[1].Tasks))
	}

	// Every entity gets a fresh unique id and starts incomplete.
	seen := map[string]bool{r.ID: true}
	for _, p := range r.Phases {
		if seen[p.ID] {
			t.Errorf("duplicate id %q", p.ID)
		}
		seen[p.ID] = true
		for _, task := range p.Tasks {
			if seen[task.ID] {
				t.Errorf("duplicate id %q", task.ID)
			}
			seen[task.ID] = true
			if task.IsCompleted {
				t.Error("hydrated task must start incomplete")
			}
			for _, st := range task.SubTasks {
				if seen[st.ID] {
					t.Errorf("duplicate id %q", st.ID)
				}
				seen[st.ID] = true
				if st.IsCompleted {
					t.Error("hydrated subtask must start incomplete")
				}
			}
		}
	}
}

func TestHydrateKeepsExplicitDescription(t *testing.T) {
	r := hydrate("Go", "My description", generatedRoadmap{})
	if r.Description != "My description" {
		t.Errorf("got description %q, want %q", r.Description, "My description")
	}
}
