package scenes

import (
	"github.com/decker502/skyraid/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ Scene         = (*GameplayScene)(nil)
	_ game.Saveable = (*GameplayScene)(nil)
)
