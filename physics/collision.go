package physics

import (
	"sort"

	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/vmath"
)

// Contact is a candidate collision for a mover this frame
type Contact struct {
	Actor    *engine.Actor
	Distance float64    // Surface distance, negative when overlapping
	Normal   vmath.Vec2 // Unit vector from mover toward Actor
}

// Toucher runs the reaction handshake for a contact pair
// engine.World satisfies it
type Toucher interface {
	Touch(self, other *engine.Actor) bool
}

// Collide appends to buf every actor the mover could reach with movement this frame
// Candidates are unsorted, buf is reset before use
func Collide(actors []*engine.Actor, mover *engine.Actor, movement vmath.Vec2, buf []Contact) []Contact {
	buf = buf[:0]
	moveLen := vmath.V2Mag(movement)

	for _, other := range actors {
		if other == mover || other.Dead || !other.Collidable {
			continue
		}
		// Already resolved this frame
		if other.CollidedThisFrame {
			continue
		}

		check := vmath.V2Sub(other.Position, mover.Position)
		checkLen := vmath.V2Mag(check)
		dist := checkLen - (mover.Radius + other.Radius)

		if moveLen < dist {
			continue
		}

		normal := vmath.V2Normalize(check)
		toward := vmath.V2Dot(movement, normal)
		if toward < 0 || toward < dist {
			continue
		}

		buf = append(buf, Contact{Actor: other, Distance: dist, Normal: normal})
	}
	return buf
}

// SortContacts orders contacts nearest surface first, ties keep actor order
func SortContacts(contacts []Contact) {
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Distance < contacts[j].Distance
	})
}

// MoveAndCollide resolves at most one contact for mover and returns the movement to apply
// The first sorted contact where both sides accept the touch gets an elastic exchange and
// zeroes the movement. Returns the contact buffer for reuse.
func MoveAndCollide(t Toucher, actors []*engine.Actor, mover *engine.Actor, movement vmath.Vec2, buf []Contact) (vmath.Vec2, []Contact) {
	if mover == nil {
		panic("physics: move nil actor")
	}
	if mover.Dead || !mover.Collidable || movement.IsZero() {
		return movement, buf
	}

	buf = Collide(actors, mover, movement, buf)
	SortContacts(buf)

	for _, c := range buf {
		// Reactions from an earlier candidate may have consumed this one
		if c.Actor.Dead {
			continue
		}
		if !t.Touch(mover, c.Actor) || !t.Touch(c.Actor, mover) {
			continue
		}

		mover.CollidedThisFrame = true
		c.Actor.CollidedThisFrame = true
		ResolveElastic(mover, c.Actor)
		return vmath.Vec2{}, buf
	}
	return movement, buf
}

// ClearContacts resets per-frame collision flags
func ClearContacts(actors []*engine.Actor) {
	for _, a := range actors {
		a.CollidedThisFrame = false
	}
}

// MoveActors advances every active actor by velocity*dt, colliding each at most once
func MoveActors(t Toucher, actors []*engine.Actor, dt float64, buf []Contact) []Contact {
	for _, a := range actors {
		if !a.Active() {
			continue
		}

		movement := vmath.V2Scale(a.Velocity, dt)
		if !a.CollidedThisFrame {
			movement, buf = MoveAndCollide(t, actors, a, movement, buf)
		}
		a.Position = vmath.V2Add(a.Position, movement)
	}
	return buf
}

// ResolveElastic exchanges the normal velocity components of a and b as a 1-D elastic collision
// Tangential components are untouched. Skipped when either mass is not positive.
func ResolveElastic(a, b *engine.Actor) {
	m1, m2 := a.Mass, b.Mass
	if m1 <= 0 || m2 <= 0 {
		return
	}

	n := vmath.V2Normalize(vmath.V2Sub(b.Position, a.Position))
	if n.IsZero() {
		return
	}
	tan := vmath.V2Perp(n)

	v1n, v1t := vmath.V2Dot(a.Velocity, n), vmath.V2Dot(a.Velocity, tan)
	v2n, v2t := vmath.V2Dot(b.Velocity, n), vmath.V2Dot(b.Velocity, tan)

	total := m1 + m2
	v1nAfter := (v1n*(m1-m2) + 2*m2*v2n) / total
	v2nAfter := (v2n*(m2-m1) + 2*m1*v1n) / total

	a.Velocity = vmath.V2Add(vmath.V2Scale(n, v1nAfter), vmath.V2Scale(tan, v1t))
	b.Velocity = vmath.V2Add(vmath.V2Scale(n, v2nAfter), vmath.V2Scale(tan, v2t))
}
