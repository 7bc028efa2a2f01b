package entity

import (
	"github.com/hackgame/arena/internal/core/geom"
	"github.com/hackgame/arena/internal/world"
)

// AnimationKind selects duration, draw program and glyphs of an Animation.
type AnimationKind uint8

const (
	PlayerDamage AnimationKind = iota
	EnemyDamage
	PlayerDestroy
	EnemyDestroy
	MinionDestroy
)

type animationSpec struct {
	name     string
	duration float64
	key      world.BatchKey
	yOffset  float64
	// gate marks destroy animations the end of the match waits for.
	gate   bool
	frames []rune
}

var animationSpecs = [...]animationSpec{
	PlayerDamage:  {name: "player-damage", duration: playerDarkDuration + playerFadeDuration, key: KeyDamage, frames: []rune("!")},
	EnemyDamage:   {name: "enemy-damage", duration: 0.3, key: KeyDamage, frames: []rune("*")},
	PlayerDestroy: {name: "player-destroy", duration: 1.3, key: world.NoBatch, gate: true, frames: []rune("@O*+. ")},
	EnemyDestroy:  {name: "enemy-destroy", duration: 1, key: world.NoBatch, gate: true, frames: []rune("E%*+. ")},
	MinionDestroy: {name: "minion-destroy", duration: 0.35, key: KeyDestroy, yOffset: 0.025, frames: []rune("x+. ")},
}

func (k AnimationKind) String() string { return animationSpecs[k].name }

// Animation is a timed transparent effect following a positioned entity.
// It removes itself when its duration has elapsed.
type Animation struct {
	kind   AnimationKind
	target world.Positioned
	state  *world.SimulationState

	time     float64
	finished bool
}

// NewAnimation binds an animation to target. Player and enemy destroy
// animations hold the end-of-game gate in state until they finish.
func NewAnimation(kind AnimationKind, target world.Positioned, state *world.SimulationState) *Animation {
	a := &Animation{kind: kind, target: target, state: state}
	if animationSpecs[kind].gate && state != nil {
		state.BeginDestroyAnimation()
	}
	return a
}

func (a *Animation) Kind() AnimationKind { return a.kind }
func (a *Animation) Time() float64       { return a.time }
func (a *Animation) Finished() bool      { return a.finished }

// Progress is the elapsed fraction of the animation in [0, 1].
func (a *Animation) Progress() float64 {
	return geom.Clamp(a.time/animationSpecs[a.kind].duration, 0, 1)
}

func (a *Animation) Pos() geom.Vec3 {
	p := a.target.Pos()
	p.Y += animationSpecs[a.kind].yOffset
	return p
}

func (a *Animation) BatchKey() world.BatchKey { return animationSpecs[a.kind].key }
func (a *Animation) Transparent() bool        { return true }

func (a *Animation) Tick(l *world.Level) {
	if a.finished {
		return
	}
	a.time += l.DeltaTime()
	if a.time < animationSpecs[a.kind].duration {
		return
	}
	a.finished = true
	l.Remove(a)
	if animationSpecs[a.kind].gate && a.state != nil {
		a.state.EndDestroyAnimation()
	}
}

func (a *Animation) Draw(c world.Canvas) {
	spec := animationSpecs[a.kind]
	i := int(a.Progress() * float64(len(spec.frames)-1))
	if spec.key == world.NoBatch {
		// Flat part under the entity, then the billboard above it.
		c.Bind(KeyDestroyFlat)
		c.Plot(a.target.Pos(), '~')
		c.Bind(KeyDestroy)
	}
	c.Plot(a.Pos(), spec.frames[i])
}
