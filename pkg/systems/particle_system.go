package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/ecs"
)

// Explosion emitter tuning. Speeds are in pixels per second, times in milliseconds.
const (
	ParticlesPerExplosion = 5
	ParticleMaxSpeed      = 30
	ParticleLifetime      = 2000
	ParticleFadeDuration  = 1800
	ParticleBaseSize      = 16
	ParticleMinScale      = 1.5
	ParticleMaxScale      = 2.0

	// DefaultParticlePoolSize matches one 15-particle emitter per pooled enemy plus the player.
	DefaultParticlePoolSize = 15 * 6
)

// ParticleSystem owns a fixed pool of explosion particles.
//
// It implements behavior.Effects, so the Exploding state and the player can
// request a burst without knowing anything about rendering. Each burst scatters
// particles inside the exploded box with a random velocity in
// [-ParticleMaxSpeed, ParticleMaxSpeed] on both axes; alpha fades linearly to 0
// over ParticleFadeDuration and the particle is recycled after ParticleLifetime.
//
// A full pool drops the remaining particles of a burst, it never grows.
type ParticleSystem struct {
	pool    *ecs.Pool[components.ParticleComponent]
	rng     *rand.Rand
	bursts  int
	dropped int
	verbose bool
}

// NewParticleSystem creates a ParticleSystem with room for size particles.
// A nil rng falls back to the global source.
func NewParticleSystem(size int, rng *rand.Rand) *ParticleSystem {
	if size <= 0 {
		size = DefaultParticlePoolSize
	}
	return &ParticleSystem{
		pool: ecs.NewPool[components.ParticleComponent](size, nil),
		rng:  rng,
	}
}

// SetVerbose enables per-burst logging.
func (ps *ParticleSystem) SetVerbose(verbose bool) {
	ps.verbose = verbose
}

func (ps *ParticleSystem) float64() float64 {
	if ps.rng != nil {
		return ps.rng.Float64()
	}
	return rand.Float64()
}

// between returns a uniform value in [lo, hi).
func (ps *ParticleSystem) between(lo, hi float64) float64 {
	return lo + ps.float64()*(hi-lo)
}

// Explode emits a burst centered on (x, y) spread over a w x h box.
func (ps *ParticleSystem) Explode(x, y, w, h float64) {
	ps.bursts++
	emitted := 0
	for i := 0; i < ParticlesPerExplosion; i++ {
		_, p, ok := ps.pool.Acquire()
		if !ok {
			ps.dropped += ParticlesPerExplosion - i
			break
		}
		p.X = x + ps.between(-w/2, w/2)
		p.Y = y + ps.between(-h/2, h/2)
		p.VelocityX = ps.between(-ParticleMaxSpeed, ParticleMaxSpeed)
		p.VelocityY = ps.between(-ParticleMaxSpeed, ParticleMaxSpeed)
		p.Size = ParticleBaseSize * ps.between(ParticleMinScale, ParticleMaxScale)
		p.Alpha = 1
		p.Lifetime = components.LifetimeComponent{MaxLifetime: ParticleLifetime}
		emitted++
	}

	if ps.verbose {
		log.Printf("[ParticleSystem] explosion at (%.1f, %.1f): %d particles, %d active",
			x, y, emitted, ps.pool.Active())
	}
}

// Update moves particles, fades them out and recycles expired ones.
// deltaMs is the frame time in milliseconds.
func (ps *ParticleSystem) Update(deltaMs float64) {
	dt := deltaMs / 1000
	ps.pool.Each(func(h ecs.Handle, p *components.ParticleComponent) {
		p.X += p.VelocityX * dt
		p.Y += p.VelocityY * dt

		if p.Lifetime.Tick(deltaMs) {
			ps.pool.Release(h)
			return
		}

		fade := 1 - p.Lifetime.CurrentLifetime/ParticleFadeDuration
		if fade < 0 {
			fade = 0
		}
		p.Alpha = fade
	})
}

// Each visits every live particle, in pool order.
func (ps *ParticleSystem) Each(fn func(p *components.ParticleComponent)) {
	ps.pool.Each(func(_ ecs.Handle, p *components.ParticleComponent) { fn(p) })
}

// Clear recycles every particle.
func (ps *ParticleSystem) Clear() {
	ps.pool.Each(func(h ecs.Handle, _ *components.ParticleComponent) { ps.pool.Release(h) })
}

// Active returns the number of live particles.
func (ps *ParticleSystem) Active() int {
	return ps.pool.Active()
}

// Bursts returns how many explosions were requested.
func (ps *ParticleSystem) Bursts() int {
	return ps.bursts
}

// Dropped returns how many particles did not fit in the pool.
func (ps *ParticleSystem) Dropped() int {
	return ps.dropped
}
