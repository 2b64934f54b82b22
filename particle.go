package elastica

import (
	"math"
	"math/rand/v2"
)

// Particle is a read-only snapshot of one decorative spark, as returned by
// Sim.Particles. Positions are in surface coordinates.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Life     float64 // remaining life in (0, 1]; drawn alpha typically follows it
	Size     float64
	Rotation float64
	Color    Color
}

// particle is the internal pool representation.
type particle struct {
	x, y     float64
	vx, vy   float64
	life     float64
	decay    float64
	size     float64
	rotation float64
	color    Color
}

const (
	particleGravity = 0.1  // downward acceleration per tick
	particleDrag    = 0.98 // velocity multiplier per tick, both axes
	particleSpin    = 0.1  // rotation increment per tick in radians
)

// Spawn attribute distributions. Life decays by a per-particle amount each
// tick, so lifespans land between ~17 and ~100 ticks.
var (
	spawnSpeed = Range{Min: 1, Max: 4}
	spawnLife  = Range{Min: 0.5, Max: 1.0}
	spawnDecay = Range{Min: 0.01, Max: 0.03}
	spawnSize  = Range{Min: 2, Max: 6}
)

// particleSystem manages a pool of particles with swap-remove pruning.
// It only knows how to spawn, advance, and retire particles; every decision
// about when to spawn belongs to the caller.
type particleSystem struct {
	pool  []particle
	alive int
}

func newParticleSystem(max int) particleSystem {
	if max <= 0 {
		max = 512
	}
	return particleSystem{pool: make([]particle, max)}
}

// spawn creates count particles at origin with randomized direction, speed,
// life, decay, size, and palette color. Particles beyond the pool capacity
// are silently dropped.
func (ps *particleSystem) spawn(origin Vec2, count int) {
	for n := 0; n < count; n++ {
		if ps.alive >= len(ps.pool) {
			return
		}
		p := &ps.pool[ps.alive]

		angle := rand.Float64() * 2 * math.Pi
		speed := spawnSpeed.Random()
		p.x = origin.X
		p.y = origin.Y
		p.vx = math.Cos(angle) * speed
		p.vy = math.Sin(angle) * speed
		p.life = spawnLife.Random()
		p.decay = spawnDecay.Random()
		p.size = spawnSize.Random()
		p.rotation = 0
		p.color = palette[rand.IntN(len(palette))]

		ps.alive++
	}
}

// update advances every alive particle by one tick and retires the ones whose
// life reaches zero, swap-removing them the same tick they expire.
func (ps *particleSystem) update() {
	i := 0
	for i < ps.alive {
		p := &ps.pool[i]

		p.life -= p.decay
		if p.life <= 0 {
			ps.alive--
			ps.pool[i] = ps.pool[ps.alive]
			continue
		}

		p.x += p.vx
		p.y += p.vy
		p.vy += particleGravity
		p.vx *= particleDrag
		p.vy *= particleDrag
		p.rotation += particleSpin

		i++
	}
}

// clear retires all particles immediately.
func (ps *particleSystem) clear() {
	ps.alive = 0
}

// snapshot copies the alive particles into dst, growing it to a high-water
// mark, and returns the filled slice. Order is arbitrary.
func (ps *particleSystem) snapshot(dst []Particle) []Particle {
	if cap(dst) < ps.alive {
		dst = make([]Particle, ps.alive)
	}
	dst = dst[:ps.alive]
	for i := 0; i < ps.alive; i++ {
		p := &ps.pool[i]
		dst[i] = Particle{
			X: p.x, Y: p.y,
			VX: p.vx, VY: p.vy,
			Life:     p.life,
			Size:     p.size,
			Rotation: p.rotation,
			Color:    p.color,
		}
	}
	return dst
}
