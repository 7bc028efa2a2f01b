package scripting

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnemyVolley_FromScript(t *testing.T) {
	e := newEngine(zap.NewNop())
	defer e.Close()
	require.NoError(t, e.LoadString(`
function enemy_volley(ctx)
  local shots = {}
  for i = 0, 2 do
    shots[#shots + 1] = { angle = -30 + i * 30, unbreakable = ctx.volley % 2 == 1 }
  end
  return shots
end`))

	shots := e.EnemyVolley(VolleyContext{Volley: 1, Hitpoints: 7})
	require.Len(t, shots, 3)
	assert.InDelta(t, -math.Pi/6, shots[0].Angle, 1e-12)
	assert.InDelta(t, 0, shots[1].Angle, 1e-12)
	assert.True(t, shots[2].Unbreakable)

	assert.False(t, e.EnemyVolley(VolleyContext{Volley: 2})[0].Unbreakable)
}

func TestEnemyVolley_Fallbacks(t *testing.T) {
	e := newEngine(nil)
	defer e.Close()
	assert.Nil(t, e.EnemyVolley(VolleyContext{}), "no function")

	require.NoError(t, e.LoadString(`function enemy_volley(ctx) return 42 end`))
	assert.Nil(t, e.EnemyVolley(VolleyContext{}), "non-table")

	require.NoError(t, e.LoadString(`function enemy_volley(ctx) error("boom") end`))
	assert.Nil(t, e.EnemyVolley(VolleyContext{}), "runtime error")
}

func TestNewEngine_LoadsDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ai"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ai", "enemy.lua"),
		[]byte(`function enemy_volley(ctx) return { { angle = 90 } } end`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ai", "notes.txt"), []byte("not lua"), 0o644))

	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	shots := e.EnemyVolley(VolleyContext{})
	require.Len(t, shots, 1)
	assert.InDelta(t, math.Pi/2, shots[0].Angle, 1e-12)
}

func TestNewEngine_SyntaxError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "core"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core", "bad.lua"), []byte("function ("), 0o644))

	_, err := NewEngine(dir, zap.NewNop())
	assert.Error(t, err)
}

func TestNewEngine_MissingDir(t *testing.T) {
	e, err := NewEngine(filepath.Join(t.TempDir(), "nope"), nil)
	require.NoError(t, err)
	defer e.Close()
	assert.Nil(t, e.EnemyVolley(VolleyContext{}))
}
