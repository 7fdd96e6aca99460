package physics

import (
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/vmath"
)

// Momentum returns the summed m*v of actors with positive mass
func Momentum(actors ...*engine.Actor) vmath.Vec2 {
	var p vmath.Vec2
	for _, a := range actors {
		if a.Mass > 0 {
			p = vmath.V2Add(p, vmath.V2Scale(a.Velocity, a.Mass))
		}
	}
	return p
}

// KineticEnergy returns the summed 0.5*m*|v|^2
func KineticEnergy(actors ...*engine.Actor) float64 {
	e := 0.0
	for _, a := range actors {
		e += a.KineticEnergy()
	}
	return e
}

// NormalEnergy returns the kinetic energy of the velocity components along n only
func NormalEnergy(n vmath.Vec2, actors ...*engine.Actor) float64 {
	e := 0.0
	for _, a := range actors {
		if a.Mass <= 0 {
			continue
		}
		vn := vmath.V2Dot(a.Velocity, n)
		e += 0.5 * a.Mass * vn * vn
	}
	return e
}
