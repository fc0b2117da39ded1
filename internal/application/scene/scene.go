// Package scene defines the screens of the game and the manager that
// switches between them.
//
// Each screen (menu, game, gameOver) implements Scene. Update, Draw and
// Destroy are optional; the manager calls them only when implemented.
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene names
const (
	NameMenu     = "menu"
	NameGame     = "game"
	NameGameOver = "gameOver"
)

// Data is the payload handed to a scene on entry
type Data struct {
	// Score of the session that just ended
	Score int
	// FoodEaten in the session that just ended
	FoodEaten int
	// NewHighScore is set when Score beat the previous best
	NewHighScore bool
}

// Scene is a screen of the game.
// Init is called every time the scene becomes current.
type Scene interface {
	Init(data Data)
}

// Updater is implemented by scenes that advance with time.
// dt is the wall-clock time since the previous frame.
type Updater interface {
	Update(dt time.Duration)
}

// Drawer is implemented by scenes that render
type Drawer interface {
	Draw(screen *ebiten.Image)
}

// Destroyer is implemented by scenes that release resources on exit,
// such as input subscriptions
type Destroyer interface {
	Destroy()
}
