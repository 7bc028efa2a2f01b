package render

import (
	"context"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/hackgame/arena/internal/core/geom"
	"github.com/hackgame/arena/internal/entity"
	"github.com/hackgame/arena/internal/input"
	"github.com/hackgame/arena/internal/world"
)

// margin is how many cells are kept left of and above tile (0, 0) so walls
// and the infinity platform stay on screen.
const margin = 3

var batchStyles = map[world.BatchKey]tcell.Style{
	entity.KeyMain:        tcell.StyleDefault.Foreground(tcell.ColorSilver),
	entity.KeyLight:       tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	entity.KeyDark:        tcell.StyleDefault.Foreground(tcell.ColorGray),
	entity.KeyBright:      tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	entity.KeyDamage:      tcell.StyleDefault.Foreground(tcell.ColorRed),
	entity.KeyDestroy:     tcell.StyleDefault.Foreground(tcell.ColorOrange),
	entity.KeyDestroyFlat: tcell.StyleDefault.Foreground(tcell.ColorMaroon),
}

// Terminal draws the arena top-down, one cell per tile, and turns key
// presses into input keys.
type Terminal struct {
	screen   tcell.Screen
	tileSize float64
	style    tcell.Style
	keys     chan input.Key
	log      *zap.Logger

	// depth keeps the highest Y plotted per cell this frame.
	depth  []float64
	width  int
	height int
}

func NewTerminal(screen tcell.Screen, tileSize float64, log *zap.Logger) *Terminal {
	if log == nil {
		log = zap.NewNop()
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	return &Terminal{
		screen:   screen,
		tileSize: tileSize,
		style:    tcell.StyleDefault,
		keys:     make(chan input.Key, 64),
		log:      log,
	}
}

// Keys delivers translated key presses. Closed when PollInput returns.
func (t *Terminal) Keys() <-chan input.Key { return t.keys }

func (t *Terminal) Bind(key world.BatchKey) {
	if s, ok := batchStyles[key]; ok {
		t.style = s
		return
	}
	t.style = tcell.StyleDefault
}

func (t *Terminal) Plot(pos geom.Vec3, glyph rune) {
	x := margin + int(math.Floor(pos.X/t.tileSize))
	y := margin + int(math.Floor(pos.Z/t.tileSize))
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	i := y*t.width + x
	if pos.Y < t.depth[i] {
		return
	}
	t.depth[i] = pos.Y
	t.screen.SetContent(x, y, glyph, nil, t.style)
}

func (t *Terminal) Render(l *world.Level, hud HUD) error {
	t.width, t.height = t.screen.Size()
	if t.width <= 0 || t.height <= 1 {
		return nil
	}
	// Last row is the HUD.
	t.height--
	if n := t.width * t.height; cap(t.depth) < n {
		t.depth = make([]float64, n)
	} else {
		t.depth = t.depth[:n]
	}
	for i := range t.depth {
		t.depth[i] = math.Inf(-1)
	}

	t.screen.Clear()
	t.style = tcell.StyleDefault
	drawLevel(t, l)
	t.drawHUD(hud)
	t.screen.Show()
	return nil
}

func (t *Terminal) drawHUD(hud HUD) {
	// The status tag leads so narrow terminals still show it.
	var tag string
	switch {
	case hud.Winner != "":
		tag = fmt.Sprintf(" [%s wins]", hud.Winner)
	case hud.Paused:
		tag = " [paused: F1 resume, F2 step]"
	}
	line := tag + fmt.Sprintf(" frame %d  hp %d  enemy %d  kills %d  blocks %d",
		hud.Frame, hud.PlayerHP, hud.EnemyHP, hud.Kills, hud.Blocks)
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(line) {
		if i >= t.width {
			break
		}
		t.screen.SetContent(i, t.height, r, nil, style)
	}
}

// PollInput forwards key presses until the screen is finalized or ctx is
// done. Run it on its own goroutine.
func (t *Terminal) PollInput(ctx context.Context) error {
	defer close(t.keys)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			k := Translate(ev)
			if k == input.None {
				continue
			}
			select {
			case t.keys <- k:
			case <-ctx.Done():
				return ctx.Err()
			default:
				t.log.Debug("input queue full, key dropped", zap.Stringer("key", k))
			}
		}
	}
}

// Close restores the terminal. It also unblocks PollInput.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Translate maps a tcell key event to an input key.
func Translate(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.FaceUp
	case tcell.KeyDown:
		return input.FaceDown
	case tcell.KeyLeft:
		return input.FaceLeft
	case tcell.KeyRight:
		return input.FaceRight
	case tcell.KeyF1:
		return input.Pause
	case tcell.KeyF2:
		return input.Step
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.MoveUp
		case 's', 'S':
			return input.MoveDown
		case 'a', 'A':
			return input.MoveLeft
		case 'd', 'D':
			return input.MoveRight
		case ' ':
			return input.Fire
		case 'q', 'Q':
			return input.Quit
		}
	}
	return input.None
}
