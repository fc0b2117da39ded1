package input

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/snake/internal/domain/entity"
)

// MouseContactID identifies the left mouse button among touch contacts
const MouseContactID = -1

// Contact is a touch (or the mouse) going down or up this frame
type Contact struct {
	ID   int
	X, Y int
}

// Frame is the raw input gathered during one tick
type Frame struct {
	Pressed  []Contact
	Released []Contact
	// KeyDirection is the arrow key pressed this tick, if any
	KeyDirection entity.Direction
	// KeyTap is set when Space or Enter was pressed this tick
	KeyTap bool
}

// Empty reports whether nothing happened this tick
func (f Frame) Empty() bool {
	return len(f.Pressed) == 0 && len(f.Released) == 0 && f.KeyDirection.IsZero() && !f.KeyTap
}

var arrowKeys = []struct {
	key ebiten.Key
	dir entity.Direction
}{
	{ebiten.KeyArrowUp, entity.DirUp},
	{ebiten.KeyArrowDown, entity.DirDown},
	{ebiten.KeyArrowLeft, entity.DirLeft},
	{ebiten.KeyArrowRight, entity.DirRight},
}

// ReadFrame collects this tick's touches, left mouse button and keys from ebiten
func ReadFrame() Frame {
	var f Frame

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		f.Pressed = append(f.Pressed, Contact{ID: int(id), X: x, Y: y})
	}
	// Released touches report no current position; use the last known one
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		f.Released = append(f.Released, Contact{ID: int(id), X: x, Y: y})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		f.Pressed = append(f.Pressed, Contact{ID: MouseContactID, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		f.Released = append(f.Released, Contact{ID: MouseContactID, X: x, Y: y})
	}

	for _, k := range arrowKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			f.KeyDirection = k.dir
			break
		}
	}
	f.KeyTap = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	return f
}

// Poller tracks open contacts across frames and publishes classified gestures
type Poller struct {
	bus        *Bus
	classifier Classifier
	now        func() time.Time
	read       func() Frame
	starts     map[int]Touch
}

// NewPoller creates a poller reading from ebiten. now stamps touch-start and
// touch-end times.
func NewPoller(bus *Bus, classifier Classifier, now func() time.Time) *Poller {
	return &Poller{
		bus:        bus,
		classifier: classifier,
		now:        now,
		read:       ReadFrame,
		starts:     make(map[int]Touch),
	}
}

// SetSource replaces the ebiten reader, e.g. with scripted frames
func (p *Poller) SetSource(read func() Frame) {
	p.read = read
}

// Poll reads one frame of input and publishes what it produced
func (p *Poller) Poll() {
	p.Process(p.read())
}

// Process publishes the gestures completed by f.
// A release without a recorded press is dropped.
func (p *Poller) Process(f Frame) {
	now := p.now()

	for _, c := range f.Pressed {
		p.starts[c.ID] = Touch{X: c.X, Y: c.Y, At: now}
	}

	for _, c := range f.Released {
		start, ok := p.starts[c.ID]
		if !ok {
			continue
		}
		delete(p.starts, c.ID)
		p.bus.Publish(p.classifier.Classify(start, Touch{X: c.X, Y: c.Y, At: now}))
	}

	if !f.KeyDirection.IsZero() {
		p.bus.Publish(Event{Kind: KindSwipe, X: -1, Y: -1, Direction: f.KeyDirection})
	}
	// Keyboard taps land outside every on-screen button
	if f.KeyTap {
		p.bus.Publish(Event{Kind: KindTap, X: -1, Y: -1})
	}
}

// Reset forgets contacts still held down, e.g. when the app loses focus
func (p *Poller) Reset() {
	clear(p.starts)
}

// Pending returns the number of contacts currently held down
func (p *Poller) Pending() int {
	return len(p.starts)
}
