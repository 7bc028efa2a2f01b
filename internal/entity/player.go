package entity

import (
	"math"

	"github.com/hackgame/arena/internal/core/collision"
	"github.com/hackgame/arena/internal/core/event"
	"github.com/hackgame/arena/internal/core/geom"
	"github.com/hackgame/arena/internal/world"
)

const (
	PlayerHitpoints    = 3
	PlayerRadius       = 0.02
	PlayerPad          = 0.015
	DefaultPlayerSpeed = 0.25

	playerRotateSpeed  = 3 * 2 * math.Pi // rad/s
	playerBulletPeriod = 0.1
	playerBulletSpeed  = 15 // tiles/s

	playerDarkDuration = 0.5
	playerFadeDuration = 0.3
)

// Controls is the input state the player reads each tick.
type Controls struct {
	Up, Down, Left, Right bool
	Fire                  bool
}

// Facing angles for the four aim keys.
const (
	FaceUp    = 0.0
	FaceLeft  = math.Pi / 2
	FaceDown  = math.Pi
	FaceRight = 3 * math.Pi / 2
)

type Player struct {
	world.Health

	pos   geom.Vec3
	speed float64

	angle       float64
	targetAngle float64
	sinceShot   float64

	controls  Controls
	animation *Animation
}

func NewPlayer(pos geom.Vec3, speed float64) *Player {
	return &Player{
		Health: world.NewHealth(world.SidePlayer, PlayerHitpoints),
		pos:    pos,
		speed:  speed,
	}
}

func (p *Player) Pos() geom.Vec3           { return p.pos }
func (p *Player) Speed() float64           { return p.speed }
func (p *Player) Angle() float64           { return p.angle }
func (p *Player) SetControls(c Controls)   { p.controls = c }
func (p *Player) BatchKey() world.BatchKey { return world.NoBatch }
func (p *Player) Transparent() bool        { return false }
func (p *Player) HasCollision(pt geom.Vec3) bool {
	return geom.InsideSphere(pt, p.pos, PlayerRadius)
}

func (p *Player) Footprint() collision.Circle {
	return collision.Circle{Center: p.pos.XZ(), Radius: PlayerRadius}
}

// Face sets the angle the player turns toward, taking the short way round.
func (p *Player) Face(target float64) {
	p.targetAngle = target
	if p.angle > target {
		if p.angle-target > math.Pi {
			p.angle -= 2 * math.Pi
		}
	} else if target-p.angle > math.Pi {
		p.angle += 2 * math.Pi
	}
}

func (p *Player) Tick(l *world.Level) {
	if p.Destroyed() {
		return
	}
	p.move(l)
	p.turn(l.DeltaTime())

	p.sinceShot += l.DeltaTime()
	if p.controls.Fire && p.sinceShot >= playerBulletPeriod {
		p.sinceShot = math.Mod(p.sinceShot, playerBulletPeriod)
		p.shoot(l)
	}
}

func (p *Player) move(l *world.Level) {
	var dir geom.Vec2
	switch {
	case p.controls.Left:
		dir.X = -1
	case p.controls.Right:
		dir.X = 1
	}
	switch {
	case p.controls.Up:
		dir.Y = -1
	case p.controls.Down:
		dir.Y = 1
	}
	if dir.IsZero() {
		return
	}

	offset := dir.Normalize().Scale(p.speed * l.DeltaTime())
	offset = collision.ResolveMotion(l.Grid, l.Obstacles(), PlayerPad, p.pos.XZ(), offset)

	end := l.Grid.Extent()
	p.pos.X = geom.Clamp(p.pos.X+offset.X, PlayerPad, end.X-PlayerPad)
	p.pos.Z = geom.Clamp(p.pos.Z+offset.Y, PlayerPad, end.Y-PlayerPad)
}

func (p *Player) turn(dt float64) {
	if p.angle == p.targetAngle {
		return
	}
	delta := playerRotateSpeed * dt
	if p.angle > p.targetAngle {
		p.angle = math.Max(p.angle-delta, p.targetAngle)
	} else {
		p.angle = math.Min(p.angle+delta, p.targetAngle)
	}
}

// Aim is the unit direction the player faces on the ground plane.
func (p *Player) Aim() geom.Vec2 {
	s, c := math.Sincos(p.angle)
	return geom.Vec2{X: -s, Y: -c}
}

func (p *Player) shoot(l *world.Level) {
	tile := l.Grid.TileSize()
	dir := p.Aim()
	spawn := p.pos.Add(dir.Scale(tile * 0.5).To3(0))
	l.Add(NewPlayerBullet(p.angle, dir.Scale(playerBulletSpeed*tile), spawn))
}

// Damage plays the damage animation, or the destroy animation and removal
// once the last hitpoint is gone.
func (p *Player) Damage(l *world.Level, amount int32) {
	if p.Apply(amount) {
		p.animation = NewAnimation(PlayerDestroy, p, l.State)
		l.Add(p.animation)
		emitDestroyed(l, p, "player")
		l.Remove(p)
		l.State.PlayerDestroyed = true
		return
	}
	if p.Destroyed() || amount <= 0 {
		return
	}
	if p.animation == nil || p.animation.Finished() {
		p.animation = NewAnimation(PlayerDamage, p, l.State)
		l.Add(p.animation)
	}
}

func (p *Player) Draw(c world.Canvas) {
	dark := p.animation != nil && p.animation.Kind() == PlayerDamage &&
		!p.animation.Finished() && p.animation.Time() <= playerDarkDuration
	if dark {
		c.Bind(KeyDark)
	} else {
		c.Bind(KeyMain)
	}
	c.Plot(p.pos, playerGlyph(p.Hitpoints()))
}

func playerGlyph(hp int32) rune {
	switch {
	case hp >= 3:
		return '@'
	case hp == 2:
		return 'Q'
	}
	return 'o'
}

func emitDestroyed(l *world.Level, e world.Damageable, kind string) {
	id, _ := l.Registry.ID(e)
	event.Emit(l.Events, event.EntityDestroyed{
		ID:    id,
		Kind:  kind,
		Enemy: e.Side() == world.SideEnemy,
		Frame: l.State.Frame,
	})
}
