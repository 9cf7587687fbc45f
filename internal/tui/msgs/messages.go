// Package msgs defines shared message types for TUI view transitions.
package msgs

// GoToHomeMsg signals transition to the roadmap list, reloading it.
type GoToHomeMsg struct{}

// OpenRoadmapMsg signals transition to a roadmap's detail view.
type OpenRoadmapMsg struct {
	RoadmapID string
}

// GoToNewRoadmapMsg signals transition to the new-roadmap form.
type GoToNewRoadmapMsg struct{}

// GoToGenerateMsg signals transition to the AI generator view.
type GoToGenerateMsg struct{}
