package system

import (
	"time"

	coresys "github.com/hackgame/arena/internal/core/system"
)

// Control is the run state the input system drives: pause, single step and
// quit. Game loop goroutine only.
type Control struct {
	paused bool
	step   bool
	quit   bool
}

func (c *Control) Paused() bool   { return c.paused }
func (c *Control) Quitting() bool { return c.quit }
func (c *Control) TogglePause()   { c.paused = !c.paused; c.step = false }
func (c *Control) RequestQuit()   { c.quit = true }

// Step advances a paused game by exactly one frame. Ignored while running.
func (c *Control) Step() {
	if c.paused {
		c.step = true
	}
}

// Advance reports whether this frame simulates, consuming a pending step.
func (c *Control) Advance() bool {
	if !c.paused {
		return true
	}
	if c.step {
		c.step = false
		return true
	}
	return false
}

// simulationPhases only run while the game advances.
var simulationPhases = []coresys.Phase{
	coresys.PhasePreUpdate,
	coresys.PhaseUpdate,
	coresys.PhaseCleanup,
}

// Driver runs one frame through the runner. Input and render run every
// frame; the simulation phases and persist only when Control lets the game
// advance, so pausing never leaves the registry mid-flush.
type Driver struct {
	runner  *coresys.Runner
	control *Control
}

func NewDriver(runner *coresys.Runner, control *Control) *Driver {
	return &Driver{runner: runner, control: control}
}

func (d *Driver) Frame(dt time.Duration) {
	d.runner.TickPhase(coresys.PhaseInput, dt)
	advance := d.control.Advance()
	if advance {
		for _, p := range simulationPhases {
			d.runner.TickPhase(p, dt)
		}
	}
	d.runner.TickPhase(coresys.PhaseRender, dt)
	if advance {
		d.runner.TickPhase(coresys.PhasePersist, dt)
	}
}
