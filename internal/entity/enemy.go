package entity

import (
	"math"

	"github.com/hackgame/arena/internal/core/collision"
	"github.com/hackgame/arena/internal/core/geom"
	"github.com/hackgame/arena/internal/world"
)

const (
	EnemyHitpoints = 7
	EnemyRadius    = 0.03

	enemyVolleyPeriod  = 0.5
	enemyTurnSpeed     = math.Pi / 4 // rad/s
	enemyBrightSeconds = 0.04
)

// Shot is one bullet of a volley, relative to the shooter's facing.
type Shot struct {
	Angle       float64
	Unbreakable bool
}

// VolleyPattern returns the shots of the n-th volley, n starting at 0, for
// a shooter with hp hitpoints left. An empty result falls back to
// DefaultVolley.
type VolleyPattern func(n int, hp int32) []Shot

// DefaultVolley fans five bullets from -90° to +90° in 45° steps. Every
// other volley is unbreakable.
func DefaultVolley(n int) []Shot {
	shots := make([]Shot, 5)
	for i := range shots {
		shots[i] = Shot{
			Angle:       (-90 + float64(i)*45) * math.Pi / 180,
			Unbreakable: n%2 == 1,
		}
	}
	return shots
}

// Enemy is the primary opponent. It turns toward the player and, when
// firing is enabled, shoots a volley every half second.
type Enemy struct {
	world.Health

	pos   geom.Vec3
	angle float64

	clock   float64
	volleys int
	fire    bool
	pattern VolleyPattern

	animation *Animation
}

func NewEnemy(pos geom.Vec3, fire bool, pattern VolleyPattern) *Enemy {
	return &Enemy{
		Health:  world.NewHealth(world.SideEnemy, EnemyHitpoints),
		pos:     pos,
		fire:    fire,
		pattern: pattern,
	}
}

func (e *Enemy) Pos() geom.Vec3           { return e.pos }
func (e *Enemy) Angle() float64           { return e.angle }
func (e *Enemy) Volleys() int             { return e.volleys }
func (e *Enemy) BatchKey() world.BatchKey { return world.NoBatch }
func (e *Enemy) Transparent() bool        { return false }

func (e *Enemy) HasCollision(pt geom.Vec3) bool {
	return geom.InsideSphere(pt, e.pos, EnemyRadius)
}

func (e *Enemy) Footprint() collision.Circle {
	return collision.Circle{Center: e.pos.XZ(), Radius: EnemyRadius}
}

func (e *Enemy) Tick(l *world.Level) {
	if e.Destroyed() {
		return
	}
	dt := l.DeltaTime()
	if l.Player != nil {
		if target := geom.HorizontalAngle(e.pos, l.Player.Pos()); !math.IsNaN(target) {
			step := enemyTurnSpeed * dt
			e.angle += geom.Clamp(wrapAngle(target-e.angle), -step, step)
		}
	}

	e.clock += dt
	if e.clock < enemyVolleyPeriod {
		return
	}
	e.clock -= enemyVolleyPeriod
	if e.fire && l.PlayerAlive() {
		e.shoot(l)
	}
}

func (e *Enemy) shoot(l *world.Level) {
	var shots []Shot
	if e.pattern != nil {
		shots = e.pattern(e.volleys, e.Hitpoints())
	}
	if len(shots) == 0 {
		shots = DefaultVolley(e.volleys)
	}
	e.volleys++

	base := geom.AngleNormal.Scale(enemyBulletSpeed * l.Grid.TileSize())
	for _, s := range shots {
		v := base.Rotate(e.angle + s.Angle)
		l.Add(NewEnemyBullet(s.Unbreakable, v.To3(0), e.pos))
	}
}

func (e *Enemy) Damage(l *world.Level, amount int32) {
	if e.Apply(amount) {
		e.animation = NewAnimation(EnemyDestroy, e, l.State)
		l.Add(e.animation)
		emitDestroyed(l, e, "enemy")
		l.Remove(e)
		l.State.EnemyDestroyed = true
		return
	}
	if e.Destroyed() || amount <= 0 {
		return
	}
	if e.animation == nil || e.animation.Finished() {
		e.animation = NewAnimation(EnemyDamage, e, l.State)
		l.Add(e.animation)
	}
}

func (e *Enemy) Draw(c world.Canvas) {
	if e.animation != nil && !e.animation.Finished() && e.animation.Time() <= enemyBrightSeconds {
		c.Bind(KeyBright)
	} else {
		c.Bind(KeyMain)
	}
	c.Plot(e.pos, 'E')
}

// wrapAngle maps a into (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
