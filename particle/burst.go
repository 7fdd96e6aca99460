package particle

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
	"github.com/lixenwraith/free-radicals/vmath"
)

// framesPerSecond converts per-frame fade rates to per-second decay
const framesPerSecond = 60.0

type particle struct {
	pos   vmath.Vec2
	vel   vmath.Vec2
	age   float64
	alpha float64
	color colorful.Color
}

// Burst is a cosmetic spray of particles from one point
// Written by EffectSystem, read by renderers between frames
type Burst struct {
	backing  [parameter.ParticleCapacity]particle
	live     []particle
	lifetime float64
	fade     float64
}

// New returns an effect factory drawing particle spread from rng
func New(rng engine.RNG) engine.EffectFactory {
	return func(spec engine.EffectSpec) engine.Effect {
		return NewBurst(spec, rng)
	}
}

// NewBurst creates a burst from spec, count is capped at ParticleCapacity
// A zero direction sprays the full circle
func NewBurst(spec engine.EffectSpec, rng engine.RNG) *Burst {
	b := &Burst{
		lifetime: spec.Lifetime,
		fade:     spec.FadeRate,
	}

	count := min(max(spec.Count, 0), parameter.ParticleCapacity)
	if spec.Lifetime <= 0 {
		count = 0
	}
	b.live = b.backing[:count]

	base, spread := 0.0, math.Pi
	if !spec.Direction.IsZero() {
		base = math.Atan2(spec.Direction.Y, spec.Direction.X)
		spread = parameter.ParticleSpread
	}

	for i := range b.live {
		angle := base + (rng.Float64()*2-1)*spread
		speed := spec.MinSpeed + rng.Float64()*(spec.MaxSpeed-spec.MinSpeed)
		b.live[i] = particle{
			pos:   spec.Origin,
			vel:   vmath.V2Scale(vmath.V2FromAngle(angle), speed),
			alpha: 1,
			color: spec.Palette.At(i),
		}
	}
	return b
}

// Update ages and moves particles, dropping the expired
// Velocity and alpha both decay by FadeRate per reference frame
func (b *Burst) Update(dt float64) {
	damp := math.Pow(1-b.fade, dt*framesPerSecond)

	n := 0
	for _, p := range b.live {
		p.age += dt
		if p.age >= b.lifetime {
			continue
		}
		p.pos = vmath.V2Add(p.pos, vmath.V2Scale(p.vel, dt))
		p.vel = vmath.V2Scale(p.vel, damp)
		p.alpha *= damp
		b.live[n] = p
		n++
	}
	b.live = b.live[:n]
}

// Active reports whether any particle is still alive
func (b *Burst) Active() bool {
	return len(b.live) > 0
}

// Len returns the live particle count
func (b *Burst) Len() int {
	return len(b.live)
}

// Visit calls fn for each live particle, color faded toward black with alpha
func (b *Burst) Visit(fn func(p engine.EffectParticle)) {
	for _, p := range b.live {
		fn(engine.EffectParticle{
			Position: p.pos,
			Color:    p.color.BlendLab(component.ColorBlack, 1-p.alpha).Clamped(),
			Alpha:    p.alpha,
		})
	}
}
