package entity

import "github.com/hackgame/arena/internal/world"

// Draw programs. Entities that switch program mid-draw report NoBatch and
// bind for themselves.
var (
	KeyMain        = world.ShaderKey("main")
	KeyLight       = world.ShaderKey("light")
	KeyDark        = world.ShaderKey("main.dark")
	KeyBright      = world.ShaderKey("main.bright")
	KeyDamage      = world.ShaderKey("damage")
	KeyDestroy     = world.ShaderKey("destroy")
	KeyDestroyFlat = world.ShaderKey("destroy.flat")
)
