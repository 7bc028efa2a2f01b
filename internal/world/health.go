package world

import "math"

// Side decides who can damage whom and which index an entity joins.
type Side uint32

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	}
	return "unknown"
}

// MaxHP marks an entity as permanently invulnerable. It can still be hit.
const MaxHP int32 = math.MaxInt32

// Health is the hitpoint state machine embedded by damageable entities.
//
//	Alive        0 < hp < MaxHP
//	Invulnerable hp == MaxHP, damage is ignored
//	Destroyed    hp <= 0, terminal
type Health struct {
	side Side
	hp   int32
}

func NewHealth(side Side, hitpoints int32) Health {
	return Health{side: side, hp: hitpoints}
}

func (h *Health) Side() Side         { return h.side }
func (h *Health) Hitpoints() int32   { return h.hp }
func (h *Health) Destroyed() bool    { return h.hp <= 0 }
func (h *Health) Invulnerable() bool { return h.hp == MaxHP }

// Apply subtracts amount while the entity is alive. It returns true only on
// the call that moves the entity into Destroyed, so the owner can run its
// destruction hook exactly once.
func (h *Health) Apply(amount int32) (destroyedNow bool) {
	if amount <= 0 || h.Invulnerable() || h.Destroyed() {
		return false
	}
	h.hp -= amount
	return h.hp <= 0
}
