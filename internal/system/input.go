package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/hackgame/arena/internal/core/system"
	"github.com/hackgame/arena/internal/entity"
	"github.com/hackgame/arena/internal/input"
	"github.com/hackgame/arena/internal/world"
)

// DefaultHold is how long a movement or fire key stays down after a press.
// Terminals only report presses and auto-repeat, never releases.
const DefaultHold = 150 * time.Millisecond

// InputSystem drains the key queue into player controls and the run state.
// Phase 0 (Input).
type InputSystem struct {
	keys    <-chan input.Key
	level   *world.Level
	control *Control
	hold    time.Duration
	held    map[input.Key]time.Duration // remaining hold per held key
	log     *zap.Logger
}

func NewInputSystem(keys <-chan input.Key, level *world.Level, control *Control, hold time.Duration, log *zap.Logger) *InputSystem {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &InputSystem{
		keys:    keys,
		level:   level,
		control: control,
		hold:    hold,
		held:    make(map[input.Key]time.Duration, 5),
		log:     log,
	}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(dt time.Duration) {
	for k, left := range s.held {
		if left -= dt; left > 0 {
			s.held[k] = left
		} else {
			delete(s.held, k)
		}
	}

drain:
	for {
		select {
		case k, ok := <-s.keys:
			if !ok {
				s.keys = nil
				break drain
			}
			s.apply(k)
		default:
			break drain
		}
	}

	if p, ok := s.level.Player.(*entity.Player); ok {
		p.SetControls(entity.Controls{
			Up:    s.isHeld(input.MoveUp),
			Down:  s.isHeld(input.MoveDown),
			Left:  s.isHeld(input.MoveLeft),
			Right: s.isHeld(input.MoveRight),
			Fire:  s.isHeld(input.Fire),
		})
	}
}

func (s *InputSystem) isHeld(k input.Key) bool {
	_, ok := s.held[k]
	return ok
}

func (s *InputSystem) apply(k input.Key) {
	if k.Held() {
		s.held[k] = s.hold
		return
	}
	switch k {
	case input.FaceUp:
		s.face(entity.FaceUp)
	case input.FaceDown:
		s.face(entity.FaceDown)
	case input.FaceLeft:
		s.face(entity.FaceLeft)
	case input.FaceRight:
		s.face(entity.FaceRight)
	case input.Pause:
		s.control.TogglePause()
		s.log.Info("pause toggled", zap.Bool("paused", s.control.Paused()))
	case input.Step:
		s.control.Step()
	case input.Quit:
		s.control.RequestQuit()
	}
}

func (s *InputSystem) face(angle float64) {
	if p, ok := s.level.Player.(*entity.Player); ok {
		p.Face(angle)
	}
}
