package entity

import (
	"github.com/hackgame/arena/internal/core/geom"
	"github.com/hackgame/arena/internal/world"
)

const (
	// BulletLimit bounds the world; bullets past it on X or Z are dropped.
	BulletLimit = 5.0

	enemyBulletSpeed  = 4 // tiles/s
	enemyBulletRadius = EnemyRadius
)

// projectile is the straight-line motion shared by both bullet kinds.
type projectile struct {
	pos      geom.Vec3
	velocity geom.Vec3
}

func (p *projectile) advance(dt float64) {
	p.pos = p.pos.Add(p.velocity.Scale(dt))
}

func (p *projectile) outOfBounds() bool {
	return p.pos.X > BulletLimit || p.pos.X < -BulletLimit ||
		p.pos.Z > BulletLimit || p.pos.Z < -BulletLimit
}

// PlayerBullet damages the first block or enemy target it reaches.
type PlayerBullet struct {
	projectile
	angle float64
}

func NewPlayerBullet(angle float64, velocity geom.Vec2, pos geom.Vec3) *PlayerBullet {
	return &PlayerBullet{projectile: projectile{pos: pos, velocity: velocity.To3(0)}, angle: angle}
}

func (b *PlayerBullet) Pos() geom.Vec3           { return b.pos }
func (b *PlayerBullet) BatchKey() world.BatchKey { return KeyLight }
func (b *PlayerBullet) Transparent() bool        { return false }
func (b *PlayerBullet) Draw(c world.Canvas)      { c.Plot(b.pos, '|') }

func (b *PlayerBullet) Tick(l *world.Level) {
	b.advance(l.DeltaTime())
	if b.hit(l) || b.outOfBounds() {
		l.Remove(b)
	}
}

func (b *PlayerBullet) hit(l *world.Level) bool {
	if blk := blockAt(l, b.pos.XZ()); blk != nil {
		blk.Damage(l, 1)
		return true
	}
	for _, d := range l.Registry.Targets() {
		if !d.Destroyed() && d.HasCollision(b.pos) {
			d.Damage(l, 1)
			return true
		}
	}
	return false
}

// EnemyBullet is itself a target: breakable ones can be shot down.
// Blocks stop it without damage.
type EnemyBullet struct {
	world.Health
	projectile
}

func NewEnemyBullet(unbreakable bool, velocity, pos geom.Vec3) *EnemyBullet {
	hp := int32(1)
	if unbreakable {
		hp = world.MaxHP
	}
	return &EnemyBullet{
		Health:     world.NewHealth(world.SideEnemy, hp),
		projectile: projectile{pos: pos, velocity: velocity},
	}
}

func (b *EnemyBullet) Pos() geom.Vec3           { return b.pos }
func (b *EnemyBullet) BatchKey() world.BatchKey { return KeyLight }
func (b *EnemyBullet) Transparent() bool        { return false }

func (b *EnemyBullet) HasCollision(pt geom.Vec3) bool {
	return geom.InsideSphere(pt, b.pos, enemyBulletRadius)
}

func (b *EnemyBullet) Draw(c world.Canvas) {
	glyph := 'o'
	if b.Invulnerable() {
		glyph = '0'
	}
	c.Plot(b.pos, glyph)
}

func (b *EnemyBullet) Tick(l *world.Level) {
	if b.Destroyed() {
		return
	}
	b.advance(l.DeltaTime())
	if b.hit(l) || b.outOfBounds() {
		l.Remove(b)
	}
}

func (b *EnemyBullet) hit(l *world.Level) bool {
	if blockAt(l, b.pos.XZ()) != nil {
		return true
	}
	if l.PlayerAlive() && b.HasCollision(l.Player.Pos()) {
		l.Player.Damage(l, 1)
		return true
	}
	return false
}

func (b *EnemyBullet) Damage(l *world.Level, amount int32) {
	if b.Apply(amount) {
		l.Remove(b)
	}
}
