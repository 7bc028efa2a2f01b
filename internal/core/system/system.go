package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput     Phase = iota // 0: apply queued input to controls
	PhasePreUpdate              // 1: deliver last frame's events
	PhaseUpdate                 // 2: tick pass over live entities
	PhaseCleanup                // 3: flush staged registry changes
	PhaseRender                 // 4: draw the flushed snapshot
	PhasePersist                // 5: record the match outcome
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "pre-update"
	case PhaseUpdate:
		return "update"
	case PhaseCleanup:
		return "cleanup"
	case PhaseRender:
		return "render"
	case PhasePersist:
		return "persist"
	}
	return "unknown"
}

// System is the interface every frame system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
