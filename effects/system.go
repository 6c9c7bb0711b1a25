package effects

import (
	"image/color"
	"math"

	"github.com/automoto/lumina/config"
	"github.com/automoto/lumina/worlddata"
)

// System owns every live effect entity.
type System struct {
	rng      Rand
	entities []Entity
}

func New(rng Rand) *System {
	return &System{rng: rng}
}

// Update advances every entity and drops the dead ones, keeping order.
func (s *System) Update() {
	live := s.entities[:0]
	for _, e := range s.entities {
		if e.Advance() {
			live = append(live, e)
		}
	}
	clear(s.entities[len(live):])
	s.entities = live
}

// Entities returns the live entities in creation order. The slice is only
// valid until the next Update or trigger call.
func (s *System) Entities() []Entity {
	return s.entities
}

func (s *System) Len() int {
	return len(s.entities)
}

func (s *System) Clear() {
	clear(s.entities)
	s.entities = s.entities[:0]
}

// Counts reports live entities per variant.
func (s *System) Counts() (particles, pulses, slashes int) {
	for _, e := range s.entities {
		switch e.(type) {
		case *Particle:
			particles++
		case *Pulse:
			pulses++
		case *SlashTrail:
			slashes++
		}
	}
	return particles, pulses, slashes
}

// between returns a value in [lo, hi).
func (s *System) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func (s *System) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// jitter returns a value in [-r, r).
func (s *System) jitter(r float64) float64 {
	return s.between(-r, r)
}

func (s *System) addParticle(x, y, vx, vy float64, c color.RGBA, life int, size float64) {
	s.entities = append(s.entities, &Particle{
		X:       x,
		Y:       y,
		VX:      vx,
		VY:      vy,
		Color:   c,
		Life:    life,
		MaxLife: life,
		Size:    size,
		Glow:    s.between(1, 3),
		Damping: config.Effects.ParticleDamping,
	})
}

// addRadial emits count particles evenly spaced on a circle of radius
// offset around (x, y), all moving outward at speed.
func (s *System) addRadial(x, y float64, count int, offset, speed float64, c color.RGBA, life int, size float64) {
	for i := 0; i < count; i++ {
		angle := math.Pi * 2 * float64(i) / float64(count)
		cos, sin := math.Cos(angle), math.Sin(angle)
		s.addParticle(x+cos*offset, y+sin*offset, cos*speed, sin*speed, c, life, size)
	}
}

// AddPlayerTrailParticle leaves a faint dot behind a moving player.
func (s *System) AddPlayerTrailParticle(x, y, vx, vy float64) {
	s.addParticle(
		x+s.jitter(4),
		y+s.jitter(4),
		vx*0.3+s.jitter(0.25),
		vy*0.3+s.jitter(0.25),
		config.Palette.PlayerGlow,
		30,
		1.5,
	)
}

// AddJumpParticles kicks dust downward from the player's feet.
func (s *System) AddJumpParticles(x, y float64) {
	for i := 0; i < 8; i++ {
		s.addParticle(x+s.jitter(8), y+8, s.jitter(2), s.between(0, 2), config.Palette.Life, 35, 2)
	}
}

// AddLandingParticles puffs upward where the player touched down.
func (s *System) AddLandingParticles(x, y float64) {
	for i := 0; i < 5; i++ {
		s.addParticle(x+s.jitter(6), y+8, s.jitter(1.5), -s.between(0, 1.5), config.Palette.Magic, 25, 1.8)
	}
}

// AddEssenceCollectEffect bursts radially in the essence's color.
func (s *System) AddEssenceCollectEffect(x, y float64, kind worlddata.Kind) {
	count, c := 8, config.Palette.Magic
	switch kind {
	case worlddata.Crystal:
		count, c = 15, config.Palette.Life
	case worlddata.Large:
		count, c = 12, config.Palette.Essence
	}
	s.addRadial(x, y, count, 0, 3, c, 40, 2.5)
}

// AddLightPulse adds an expanding ring plus a ring of particles.
func (s *System) AddLightPulse(x, y float64) {
	cfg := config.Effects
	s.entities = append(s.entities, newPulse(x, y, cfg.PulseMaxRadius, cfg.PulseLife))
	s.addRadial(x, y, cfg.PulseParticles, 15, 2.5, config.Palette.Magic, 35, 2)
}

// AddSlashAttack adds a slash arc on the facing side plus impact sparks.
func (s *System) AddSlashAttack(x, y float64, facingRight bool) {
	cfg := config.Effects
	s.entities = append(s.entities, newSlashTrail(x, y, facingRight, cfg.SlashLife, SlashArc{
		Points:      cfg.SlashPoints,
		Radius:      cfg.SlashRadius,
		RevealEvery: cfg.SlashRevealEvery,
		PointAge:    cfg.SlashPointAge,
	}))

	dir := config.DirectionLeft
	if facingRight {
		dir = config.DirectionRight
	}
	impactX := x + dir*cfg.SlashReach
	impactY := y - 8

	for i := 0; i < 10; i++ {
		s.addParticle(
			impactX+s.jitter(10),
			impactY+s.jitter(10),
			dir*s.between(1, 4),
			s.jitter(2),
			config.Palette.Warmth,
			30,
			2.2,
		)
	}
	for i := 0; i < 5; i++ {
		s.addParticle(
			impactX+s.jitter(7.5),
			impactY+s.jitter(7.5),
			dir*s.between(0.5, 2.5),
			s.jitter(1.5),
			config.White,
			20,
			1.8,
		)
	}
}
