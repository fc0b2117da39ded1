package scene

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/snake/internal/infrastructure/audio"
)

// Music starts the background track for a scene
type Music interface {
	PlayBackgroundMusic(track audio.Track)
}

// Manager owns the registered scenes and the current one
type Manager struct {
	scenes      map[string]Scene
	current     Scene
	currentName string
	music       Music
}

// NewManager creates a manager. music may be nil.
func NewManager(music Music) *Manager {
	return &Manager{
		scenes: make(map[string]Scene),
		music:  music,
	}
}

// Register adds s under name, replacing any scene with that name
func (m *Manager) Register(name string, s Scene) {
	m.scenes[name] = s
}

// Switch makes the scene registered under name current: the outgoing scene
// is destroyed, the incoming one initialized with data and its music track
// requested. An unknown name is logged and the current scene stays active.
func (m *Manager) Switch(name string, data Data) bool {
	next, ok := m.scenes[name]
	if !ok {
		log.Printf("[Scene] Scene not found: %s", name)
		return false
	}

	if d, ok := m.current.(Destroyer); ok {
		d.Destroy()
	}

	m.current = next
	m.currentName = name
	next.Init(data)

	if m.music != nil {
		m.music.PlayBackgroundMusic(audio.Track(name))
	}

	log.Printf("[Scene] Switched to %s", name)
	return true
}

// Update advances the current scene
func (m *Manager) Update(dt time.Duration) {
	if u, ok := m.current.(Updater); ok {
		u.Update(dt)
	}
}

// Draw renders the current scene
func (m *Manager) Draw(screen *ebiten.Image) {
	if d, ok := m.current.(Drawer); ok {
		d.Draw(screen)
	}
}

// Current returns the current scene and its name
func (m *Manager) Current() (Scene, string) {
	return m.current, m.currentName
}

// ResumeMusic requests the current scene's track again, e.g. after the app
// returns to the foreground
func (m *Manager) ResumeMusic() {
	if m.current == nil || m.music == nil {
		return
	}
	m.music.PlayBackgroundMusic(audio.Track(m.currentName))
}
