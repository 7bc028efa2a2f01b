package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackgame/arena/internal/core/event"
	"github.com/hackgame/arena/internal/data"
	"github.com/hackgame/arena/internal/input"
	"github.com/hackgame/arena/internal/level"
	"github.com/hackgame/arena/internal/world"
)

const tileSize = 0.05

func buildLevel(t *testing.T) *world.Level {
	t.Helper()
	f, err := data.ParseLevel("render", []byte(`{
		"width": 4, "height": 3,
		"map": ["B  U", "    ", "    "],
		"entities": [{"type": "Player", "pos": {"x": 1.5, "z": 1.5}}, {"type": "Enemy1", "pos": {"x": 3.5, "z": 2.5}}]
	}`))
	require.NoError(t, err)
	l, err := level.Build(f, level.Deps{TileSize: tileSize, Events: event.NewBus()})
	require.NoError(t, err)
	return l
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	return s
}

func cell(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func hudLine(s tcell.Screen, width, row int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(cell(s, x, row))
	}
	return b.String()
}

func TestTerminal_DrawsArenaAndHUD(t *testing.T) {
	s := newScreen(t, 80, 10)
	defer s.Fini()
	term := NewTerminal(s, tileSize, nil)
	l := buildLevel(t)

	require.NoError(t, term.Render(l, HUD{Frame: 12, PlayerHP: 3, EnemyHP: 7, Paused: true}))

	assert.Equal(t, '#', cell(s, margin+0, margin+0))
	assert.Equal(t, '█', cell(s, margin+3, margin+0))
	assert.Equal(t, '@', cell(s, margin+1, margin+1))
	assert.Equal(t, 'E', cell(s, margin+3, margin+2))
	assert.Equal(t, '·', cell(s, margin+2, margin+1), "floor under empty tiles")

	hud := hudLine(s, 80, 9)
	assert.Contains(t, hud, "frame 12")
	assert.Contains(t, hud, "paused")
}

func TestTerminal_NarrowHUDKeepsStatusTag(t *testing.T) {
	s := newScreen(t, 20, 10)
	defer s.Fini()
	term := NewTerminal(s, tileSize, nil)
	l := buildLevel(t)

	require.NoError(t, term.Render(l, HUD{Frame: 3, Paused: true}))
	assert.Contains(t, hudLine(s, 20, 9), "paused")

	require.NoError(t, term.Render(l, HUD{Frame: 4, Winner: "enemy"}))
	assert.Contains(t, hudLine(s, 20, 9), "[enemy wins]")
}

func TestTerminal_TransparentOverOpaque(t *testing.T) {
	s := newScreen(t, 30, 10)
	defer s.Fini()
	term := NewTerminal(s, tileSize, nil)
	l := buildLevel(t)

	// A damage animation sits on the player at the same height and is drawn
	// after every opaque batch.
	l.Player.Damage(l, 1)
	l.Registry.Flush()
	require.NoError(t, term.Render(l, HUD{}))
	assert.Equal(t, '!', cell(s, margin+1, margin+1))
}

func TestTerminal_PollInput(t *testing.T) {
	s := newScreen(t, 10, 5)
	term := NewTerminal(s, tileSize, nil)

	done := make(chan error, 1)
	go func() { done <- term.PollInput(context.Background()) }()

	s.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	s.InjectKey(tcell.KeyF1, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	s.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)

	var got []input.Key
	timeout := time.After(2 * time.Second)
	for len(got) < 3 {
		select {
		case k := <-term.Keys():
			got = append(got, k)
		case <-timeout:
			t.Fatalf("only got %v", got)
		}
	}
	assert.Equal(t, []input.Key{input.MoveUp, input.Pause, input.FaceLeft}, got)

	term.Close()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("PollInput did not stop")
	}
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want input.Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), input.MoveRight},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.Fire},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.FaceUp},
		{tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), input.Step},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.Quit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), input.None},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Translate(c.ev), "key %s", c.ev.Name())
	}
}

func TestHeadless_CountsBatches(t *testing.T) {
	h := NewHeadless()
	l := buildLevel(t)

	require.NoError(t, h.Render(l, HUD{Frame: 1}))
	assert.Equal(t, uint64(1), h.Frames)
	// Player and enemy bind themselves; the main batch binds once.
	assert.Equal(t, 3, h.Binds)
	// 2 blocks, 12 floor tiles, player, enemy.
	assert.Equal(t, 16, h.Plots)
	assert.Equal(t, uint64(1), h.LastHUD.Frame)
}
