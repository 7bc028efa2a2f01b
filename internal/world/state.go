package world

// SimulationState holds the end-of-game flags for one level.
// Owned by the Level and mutated only from the game loop goroutine.
type SimulationState struct {
	Frame           uint64
	PlayerDestroyed bool
	EnemyDestroyed  bool

	// destroyAnimations counts player/enemy destroy animations still
	// playing; the end screen waits for them.
	destroyAnimations int
}

func (s *SimulationState) BeginDestroyAnimation() { s.destroyAnimations++ }

func (s *SimulationState) EndDestroyAnimation() {
	if s.destroyAnimations > 0 {
		s.destroyAnimations--
	}
}

func (s *SimulationState) DestroyAnimations() int { return s.destroyAnimations }

// GameEnded is true once a side has lost and its destroy animation is over.
func (s *SimulationState) GameEnded() bool {
	return (s.PlayerDestroyed || s.EnemyDestroyed) && s.destroyAnimations == 0
}

// Winner names the surviving side, or "" while nobody has lost.
// When both fall, the enemy is credited.
func (s *SimulationState) Winner() string {
	switch {
	case s.PlayerDestroyed:
		return SideEnemy.String()
	case s.EnemyDestroyed:
		return SidePlayer.String()
	}
	return ""
}
