package entity

import (
	"math"

	"github.com/hackgame/arena/internal/core/collision"
	"github.com/hackgame/arena/internal/core/geom"
	"github.com/hackgame/arena/internal/world"
)

const (
	MinionRadius = 0.015

	minionSpeed        = 0.5 // tiles/s
	minionBulletPeriod = 2.0
)

// Minion is a small chaser. It walks straight at the player, sliding along
// blocks, and fires a breakable bullet every two seconds.
type Minion struct {
	world.Health

	pos   geom.Vec3
	angle float64
	clock float64
}

func NewMinion(pos geom.Vec3) *Minion {
	return &Minion{Health: world.NewHealth(world.SideEnemy, 1), pos: pos}
}

func (m *Minion) Pos() geom.Vec3           { return m.pos }
func (m *Minion) BatchKey() world.BatchKey { return KeyMain }
func (m *Minion) Transparent() bool        { return false }

func (m *Minion) HasCollision(pt geom.Vec3) bool {
	return geom.InsideSphere(pt, m.pos, MinionRadius)
}

func (m *Minion) Footprint() collision.Circle {
	return collision.Circle{Center: m.pos.XZ(), Radius: MinionRadius}
}

func (m *Minion) Tick(l *world.Level) {
	if m.Destroyed() || !l.PlayerAlive() {
		return
	}
	dt := l.DeltaTime()
	tile := l.Grid.TileSize()

	if a := geom.HorizontalAngle(m.pos, l.Player.Pos()); !math.IsNaN(a) {
		m.angle = a
	}
	offset := geom.AngleNormal.Scale(dt * minionSpeed * tile).Rotate(m.angle)
	offset = collision.ResolveAgainstGrid(l.Grid, m.pos.XZ(), offset)
	m.pos = m.pos.Add(offset.To3(0))

	m.clock += dt
	if m.clock >= minionBulletPeriod {
		m.clock -= minionBulletPeriod
		v := geom.AngleNormal.Scale(enemyBulletSpeed * tile).Rotate(m.angle)
		l.Add(NewEnemyBullet(false, v.To3(0), m.pos))
	}
}

func (m *Minion) Damage(l *world.Level, amount int32) {
	if !m.Apply(amount) {
		return
	}
	l.Add(NewAnimation(MinionDestroy, m, l.State))
	emitDestroyed(l, m, "minion")
	l.Remove(m)
}

func (m *Minion) Draw(c world.Canvas) {
	c.Plot(m.pos, 'm')
}
