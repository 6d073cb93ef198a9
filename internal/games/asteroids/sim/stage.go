package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// SpriteRegistry owns every live entity and advances them each frame.
// Iteration order is insertion order, which keeps collision checks and
// therefore whole runs deterministic.
type SpriteRegistry interface {
	Width() float64
	Height() float64
	// Add assigns the entity a fresh ID, computes its world shape and stores it.
	Add(e *Entity) EntityID
	// Remove drops the entity. Removing an unknown ID is a no-op.
	Remove(id EntityID)
	Get(id EntityID) (*Entity, bool)
	// Each visits live entities in insertion order until fn returns false.
	Each(fn func(e *Entity) bool)
	Count(k Kind) int
	// Clear removes everything and restarts ID assignment.
	Clear()
	// MoveSprites integrates every entity one frame, wraps positions and
	// expires bullets and debris whose lifetime ran out.
	MoveSprites()
	DrawSprites()
}

// arena is the storage shared by both registry implementations.
type arena struct {
	w, h   float64
	nextID EntityID
	order  []*Entity
	byID   map[EntityID]*Entity
}

func newArena(w, h float64) arena {
	return arena{w: w, h: h, byID: make(map[EntityID]*Entity)}
}

func (a *arena) Width() float64  { return a.w }
func (a *arena) Height() float64 { return a.h }

func (a *arena) Add(e *Entity) EntityID {
	a.nextID++
	e.ID = a.nextID
	e.removed = false
	e.refresh()
	a.order = append(a.order, e)
	a.byID[e.ID] = e
	return e.ID
}

func (a *arena) Remove(id EntityID) {
	e, ok := a.byID[id]
	if !ok {
		return
	}
	e.removed = true
	delete(a.byID, id)
}

func (a *arena) Get(id EntityID) (*Entity, bool) {
	e, ok := a.byID[id]
	return e, ok
}

func (a *arena) Each(fn func(e *Entity) bool) {
	// Entities added during the walk are not visited.
	n := len(a.order)
	for i := 0; i < n; i++ {
		e := a.order[i]
		if e.removed {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

func (a *arena) Count(k Kind) int {
	n := 0
	for _, e := range a.byID {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func (a *arena) Clear() {
	a.order = a.order[:0]
	a.byID = make(map[EntityID]*Entity)
	a.nextID = 0
}

func (a *arena) MoveSprites() {
	for _, e := range a.order {
		if e.removed {
			continue
		}
		e.integrate(a.w, a.h)
		switch e.Kind {
		case KindBullet:
			e.Bullet.TTL--
			if e.Bullet.TTL <= 0 {
				a.Remove(e.ID)
			}
		case KindDebris:
			e.Debris.TTL--
			if e.Debris.TTL <= 0 {
				a.Remove(e.ID)
			}
		}
	}
	a.compact()
}

// compact drops removed entities from the ordered slice.
func (a *arena) compact() {
	live := a.order[:0]
	for _, e := range a.order {
		if !e.removed {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(a.order); i++ {
		a.order[i] = nil
	}
	a.order = live
}

// HeadlessStage is a registry with no presentation. Used by agents, tests
// and the sim command, which run at machine speed.
type HeadlessStage struct {
	arena
}

// NewHeadlessStage creates a headless registry of the given world size.
func NewHeadlessStage(w, h float64) *HeadlessStage {
	return &HeadlessStage{arena: newArena(w, h)}
}

// DrawSprites does nothing.
func (s *HeadlessStage) DrawSprites() {}

// PresentationStage rasterizes the world into a character back-buffer every
// frame. The buffer is read by the terminal front-end.
type PresentationStage struct {
	arena
	screen *core.Screen
}

// NewPresentationStage creates a registry that draws into a cols x rows buffer.
func NewPresentationStage(w, h float64, cols, rows int) *PresentationStage {
	return &PresentationStage{
		arena:  newArena(w, h),
		screen: core.NewScreen(max(cols, 1), max(rows, 1)),
	}
}

// Screen returns the back-buffer filled by the last DrawSprites call.
func (s *PresentationStage) Screen() *core.Screen {
	return s.screen
}

// Resize changes the back-buffer size. The world size is unchanged.
func (s *PresentationStage) Resize(cols, rows int) {
	s.screen.Resize(max(cols, 1), max(rows, 1))
}

// Project maps a world position to a buffer cell.
func (s *PresentationStage) Project(p core.Vec2) (int, int) {
	cx := int(math.Floor(p.X / s.w * float64(s.screen.Width())))
	cy := int(math.Floor(p.Y / s.h * float64(s.screen.Height())))
	return cx, cy
}

// DrawSprites clears the buffer and draws every live entity.
func (s *PresentationStage) DrawSprites() {
	s.screen.Clear()
	s.Each(func(e *Entity) bool {
		s.draw(e)
		return true
	})
}

func (s *PresentationStage) draw(e *Entity) {
	switch e.Kind {
	case KindRock:
		s.outline(e, '#', core.ColorRock)
	case KindSaucer:
		color := core.ColorSaucer
		if e.Saucer.Size == SaucerSmall {
			color = core.ColorSmallSaucer
		}
		s.outline(e, '=', color)
	case KindShip:
		if e.Ship.InHyperspace {
			return
		}
		x, y := s.Project(e.Pos)
		if e.Ship.Thrusting {
			fx, fy := s.Project(e.Pos.Sub(core.Heading(e.Angle).Scale(e.Radius())))
			if fx != x || fy != y {
				s.screen.SetColored(fx, fy, '*', core.ColorThrust)
			}
		}
		s.screen.SetColored(x, y, shipGlyph(e.Angle), core.ColorShip)
	case KindBullet:
		x, y := s.Project(e.Pos)
		color := core.ColorShipShot
		if e.Bullet.Owner == KindSaucer {
			color = core.ColorSaucerShot
		}
		s.screen.SetColored(x, y, '•', color)
	case KindDebris:
		x, y := s.Project(e.Pos)
		s.screen.SetColored(x, y, '.', core.ColorDebris)
	}
}

// outline draws each polygon edge with Bresenham lines.
func (s *PresentationStage) outline(e *Entity, r rune, c core.Color) {
	poly := e.Polygon()
	for i := range poly {
		x0, y0 := s.Project(poly[i])
		x1, y1 := s.Project(poly[(i+1)%len(poly)])
		s.screen.DrawLine(x0, y0, x1, y1, r, c)
	}
}

var shipGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// shipGlyph picks the arrow closest to the ship's heading.
func shipGlyph(angle float64) rune {
	i := int(math.Floor(core.NormalizeAngle(angle+22.5)/45)) % 8
	return shipGlyphs[i]
}
