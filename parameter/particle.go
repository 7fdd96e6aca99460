package parameter

import "math"

// Bond burst, scaled by resolution
const (
	BondParticleCount = 36
	BondMinSpeed      = 64.0
	BondMaxSpeed      = 128.0
	BondLifetime      = 2.0
	BondFadeRate      = 0.05
)

// Hydrogen pair burst, smaller and slower
const (
	HydrogenParticleCount = 16
	HydrogenMinSpeed      = 32.0
	HydrogenMaxSpeed      = 64.0
)

// Particle pool
const (
	// ParticleCapacity caps particles per effect
	ParticleCapacity = 128
	// ParticleSpread is the half-angle of a burst around its direction, radians
	// Zero direction bursts in a full circle
	ParticleSpread = math.Pi
)

// Hydrogen touch spark, every hydrogen-hydrogen contact
const (
	SparkParticleCount = 18
	SparkLifetime      = 1.5
)
