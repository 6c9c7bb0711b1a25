// Package effects owns transient visuals: particles, expanding light pulses
// and slash trails. All variants live in one ordered collection and advance
// once per frame; randomness comes from an injected source so spawns are
// reproducible.
package effects

import (
	"image/color"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Rand is the only source of jitter. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Entity is one of *Particle, *Pulse or *SlashTrail.
type Entity interface {
	// Advance steps the entity one frame and reports whether it is still alive.
	Advance() bool
	effect()
}

// Particle is a glowing dot that drifts and fades.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   color.RGBA
	Life    int
	MaxLife int
	Size    float64
	Glow    float64 // halo scale, 1..3
	Damping float64
}

func (p *Particle) effect() {}

func (p *Particle) Advance() bool {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= p.Damping
	p.VY *= p.Damping
	p.Life--
	return p.Life > 0
}

// Alpha is the remaining-life fraction.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Pulse is a ring that grows from zero to MaxRadius over its life.
type Pulse struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Life      int
	MaxLife   int
	growth    *gween.Tween
}

func newPulse(x, y, maxRadius float64, life int) *Pulse {
	return &Pulse{
		X:         x,
		Y:         y,
		MaxRadius: maxRadius,
		Life:      life,
		MaxLife:   life,
		growth:    gween.New(0, float32(maxRadius), float32(life), ease.Linear),
	}
}

func (p *Pulse) effect() {}

func (p *Pulse) Advance() bool {
	p.Life--
	r, _ := p.growth.Update(1)
	p.Radius = float64(r)
	return p.Life > 0
}

// Alpha is the remaining-life fraction.
func (p *Pulse) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// TrailPoint is a revealed sample of a slash arc.
type TrailPoint struct {
	X, Y   float64
	Age    int
	MaxAge int
}

// Alpha fades a point out as it ages.
func (tp TrailPoint) Alpha() float64 {
	if tp.MaxAge <= 0 {
		return 0
	}
	return math.Max(0, 1-float64(tp.Age)/float64(tp.MaxAge))
}

// SlashTrail sweeps an arc in front of the player. Arc samples are computed
// up front and revealed one at a time; each revealed point ages out on its
// own. The trail lives until its life runs out and every point has faded.
type SlashTrail struct {
	X, Y        float64
	FacingRight bool
	Life        int
	MaxLife     int
	Path        []TrailPoint // full arc, Age unused
	Points      []TrailPoint // revealed, oldest first

	revealEvery int
	pointAge    int
	revealed    int
	frame       int
}

// SlashArc holds the arc geometry.
type SlashArc struct {
	Points      int
	Radius      float64
	RevealEvery int
	PointAge    int
}

func newSlashTrail(x, y float64, facingRight bool, life int, arc SlashArc) *SlashTrail {
	s := &SlashTrail{
		X:           x,
		Y:           y,
		FacingRight: facingRight,
		Life:        life,
		MaxLife:     life,
		revealEvery: max(arc.RevealEvery, 1),
		pointAge:    arc.PointAge,
	}

	start, end := -math.Pi/2.5, math.Pi/5
	if !facingRight {
		start, end = math.Pi+math.Pi/2.5, math.Pi-math.Pi/5
	}
	n := max(arc.Points, 2)
	s.Path = make([]TrailPoint, n)
	for i := range s.Path {
		progress := float64(i) / float64(n-1)
		angle := start + (end-start)*progress
		s.Path[i] = TrailPoint{
			X:      x + math.Cos(angle)*arc.Radius,
			Y:      y + math.Sin(angle)*arc.Radius*0.8,
			MaxAge: arc.PointAge,
		}
	}
	return s
}

func (s *SlashTrail) effect() {}

func (s *SlashTrail) Advance() bool {
	s.Life--
	s.frame++

	if s.frame%s.revealEvery == 0 && s.revealed < len(s.Path) {
		p := s.Path[s.revealed]
		p.Age = 0
		p.MaxAge = s.pointAge
		s.Points = append(s.Points, p)
		s.revealed++
	}

	live := s.Points[:0]
	for _, p := range s.Points {
		p.Age++
		if p.Age < p.MaxAge {
			live = append(live, p)
		}
	}
	s.Points = live

	return s.Life > 0 || len(s.Points) > 0
}

// Segment is one drawn stroke of a slash trail.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Alpha          float64
	Thickness      float64
}

// Segments joins consecutive revealed points. Older segments are thicker;
// each fades by the mean age of its two ends.
func (s *SlashTrail) Segments() []Segment {
	n := len(s.Points)
	if n < 2 {
		return nil
	}
	out := make([]Segment, 0, n-1)
	for i := 0; i < n-1; i++ {
		a, b := s.Points[i], s.Points[i+1]
		avgAge := float64(a.Age+b.Age) / 2
		avgMaxAge := float64(a.MaxAge+b.MaxAge) / 2
		alpha := 0.0
		if avgMaxAge > 0 {
			alpha = math.Max(0, 1-avgAge/avgMaxAge)
		}
		out = append(out, Segment{
			X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y,
			Alpha:     alpha,
			Thickness: 6 + float64(n-i)*0.5,
		})
	}
	return out
}
