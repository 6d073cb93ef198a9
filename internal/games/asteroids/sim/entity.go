package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Kind is the closed set of entity variants.
type Kind int

const (
	KindShip Kind = iota
	KindRock
	KindSaucer
	KindBullet
	KindDebris
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindRock:
		return "rock"
	case KindSaucer:
		return "saucer"
	case KindBullet:
		return "bullet"
	case KindDebris:
		return "debris"
	default:
		return "unknown"
	}
}

// EntityID identifies an entity within a registry. Zero means "none".
type EntityID uint64

// RockSize is the size class of a rock.
type RockSize int

const (
	RockLarge RockSize = iota
	RockMedium
	RockSmall
)

func (s RockSize) String() string {
	switch s {
	case RockLarge:
		return "large"
	case RockMedium:
		return "medium"
	case RockSmall:
		return "small"
	default:
		return "invalid"
	}
}

// Valid reports whether s is one of the three size classes.
func (s RockSize) Valid() bool {
	return s >= RockLarge && s <= RockSmall
}

// Child returns the size of the fragments a rock of size s splits into.
// Small rocks have no children.
func (s RockSize) Child() (RockSize, bool) {
	switch s {
	case RockLarge:
		return RockMedium, true
	case RockMedium:
		return RockSmall, true
	default:
		return 0, false
	}
}

// SaucerSize is the size class of a saucer.
type SaucerSize int

const (
	SaucerLarge SaucerSize = iota
	SaucerSmall
)

func (s SaucerSize) String() string {
	if s == SaucerSmall {
		return "small"
	}
	return "large"
}

// ShipState is the ship payload.
type ShipState struct {
	Thrusting     bool
	InHyperspace  bool
	HyperspaceTTL int
}

// RockState is the rock payload.
type RockState struct {
	Size RockSize
}

// SaucerState is the saucer payload.
type SaucerState struct {
	Size         SaucerSize
	Laps         int
	ScoreValue   int
	FireCooldown int
	CourseTimer  int
	Dir          float64 // +1 travelling right, -1 travelling left
}

// BulletState is the bullet payload.
type BulletState struct {
	Owner   Kind
	OwnerID EntityID
	TTL     int
}

// DebrisState is the debris payload.
type DebrisState struct {
	TTL int
}

// Entity is any object living on the stage. Kind selects which payload is meaningful.
// Shape is in local coordinates around the origin, pointing up at angle 0;
// entities with no shape (bullets, debris) are points.
type Entity struct {
	ID    EntityID
	Kind  Kind
	Pos   core.Vec2
	Vel   core.Vec2
	Angle float64 // degrees clockwise from up, [0, 360)
	Spin  float64 // degrees per frame
	Shape []core.Vec2

	Ship   ShipState
	Rock   RockState
	Saucer SaucerState
	Bullet BulletState
	Debris DebrisState

	world    []core.Vec2
	bounds   core.Box
	wrappedX bool
	removed  bool
}

// IsPoint reports whether the entity collides as a single point.
func (e *Entity) IsPoint() bool {
	return len(e.Shape) == 0
}

// Bounds returns the axis-aligned box around the entity's current world shape.
func (e *Entity) Bounds() core.Box {
	return e.bounds
}

// Polygon returns the world-space outline. Nil for point entities.
// The slice is owned by the entity and must not be modified.
func (e *Entity) Polygon() []core.Vec2 {
	return e.world
}

// WrappedX reports whether the last move crossed the left or right edge.
func (e *Entity) WrappedX() bool {
	return e.wrappedX
}

// Radius returns the distance from the position to the farthest shape vertex.
func (e *Entity) Radius() float64 {
	r := 0.0
	for _, p := range e.Shape {
		r = math.Max(r, p.Len())
	}
	return r
}

// refresh recomputes the world polygon and bounds from Pos and Angle.
func (e *Entity) refresh() {
	if e.IsPoint() {
		e.world = e.world[:0]
		e.bounds = core.BoxAround(e.Pos, 0)
		return
	}
	e.world = core.Transform(e.world, e.Shape, e.Pos, e.Angle)
	e.bounds = core.BoundsOf(e.world)
}

// integrate advances the entity by one frame and wraps it onto the torus.
func (e *Entity) integrate(w, h float64) {
	e.Pos = e.Pos.Add(e.Vel)
	if e.Spin != 0 {
		e.Angle = core.NormalizeAngle(e.Angle + e.Spin)
	}
	x := core.Wrap(e.Pos.X, w)
	e.wrappedX = x != e.Pos.X
	e.Pos = core.V(x, core.Wrap(e.Pos.Y, h))
	e.refresh()
}

// Intersects runs the two-phase collision test against o and returns the
// first contact point. Bounding boxes reject first; then polygon outlines
// (or point containment for bullets) decide.
func (e *Entity) Intersects(o *Entity) (core.Vec2, bool) {
	if !e.bounds.Overlaps(o.bounds) {
		return core.Vec2{}, false
	}
	switch {
	case e.IsPoint() && o.IsPoint():
		return core.Vec2{}, false
	case e.IsPoint():
		if core.PointInPolygon(e.Pos, o.world) {
			return e.Pos, true
		}
		return core.Vec2{}, false
	case o.IsPoint():
		if core.PointInPolygon(o.Pos, e.world) {
			return o.Pos, true
		}
		return core.Vec2{}, false
	default:
		return core.PolygonsIntersect(e.world, o.world)
	}
}

// IntersectsOnTorus is Intersects on a w×h torus. o is tested at the copy
// nearest to e, so outlines straddling an edge still touch. The contact
// point is folded back onto the stage.
func (e *Entity) IntersectsOnTorus(o *Entity, w, h float64) (core.Vec2, bool) {
	shift := core.V(nearestImage(e.Pos.X, o.Pos.X, w), nearestImage(e.Pos.Y, o.Pos.Y, h))
	if shift == (core.Vec2{}) {
		return e.Intersects(o)
	}
	p, ok := e.Intersects(o.translated(shift))
	if !ok {
		return core.Vec2{}, false
	}
	return core.V(core.Wrap(p.X, w), core.Wrap(p.Y, h)), true
}

// nearestImage returns the whole-stage offset that brings b closest to a
// along one axis: -size, 0 or size.
func nearestImage(a, b, size float64) float64 {
	if size <= 0 {
		return 0
	}
	switch d := a - b; {
	case d > size/2:
		return size
	case d < -size/2:
		return -size
	}
	return 0
}

// translated returns a collision-only copy of e moved by v.
func (e *Entity) translated(v core.Vec2) *Entity {
	img := &Entity{Kind: e.Kind, Pos: e.Pos.Add(v), Shape: e.Shape}
	img.world = make([]core.Vec2, len(e.world))
	for i, p := range e.world {
		img.world[i] = p.Add(v)
	}
	img.bounds = core.Box{
		MinX: e.bounds.MinX + v.X, MinY: e.bounds.MinY + v.Y,
		MaxX: e.bounds.MaxX + v.X, MaxY: e.bounds.MaxY + v.Y,
	}
	return img
}
