package effects

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/lumina/config"
	"github.com/automoto/lumina/worlddata"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func newTestSystem(seed uint64) *System {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

// fixedRand always returns the same value.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestParticleAdvance(t *testing.T) {
	p := &Particle{X: 0, Y: 0, VX: 2, VY: -1, Life: 2, MaxLife: 2, Damping: 0.95}

	if !p.Advance() {
		t.Fatal("particle died after one frame, want alive")
	}
	if p.X != 2 || p.Y != -1 {
		t.Errorf("position = (%v,%v), want (2,-1)", p.X, p.Y)
	}
	if !approxEqual(p.VX, 1.9, 1e-9) || !approxEqual(p.VY, -0.95, 1e-9) {
		t.Errorf("velocity = (%v,%v), want (1.9,-0.95)", p.VX, p.VY)
	}
	if !approxEqual(p.Alpha(), 0.5, 1e-9) {
		t.Errorf("Alpha() = %v, want 0.5", p.Alpha())
	}
	if p.Advance() {
		t.Error("particle alive at life 0")
	}
}

func TestPulseGrowsLinearly(t *testing.T) {
	p := newPulse(10, 20, 60, 20)
	for i := 1; i <= 20; i++ {
		alive := p.Advance()
		want := float64(i) / 20 * 60
		if !approxEqual(p.Radius, want, 1e-3) {
			t.Fatalf("frame %d: Radius = %v, want %v", i, p.Radius, want)
		}
		if alive != (i < 20) {
			t.Fatalf("frame %d: alive = %v", i, alive)
		}
	}
}

func TestSlashTrailArc(t *testing.T) {
	arc := SlashArc{Points: 6, Radius: 40, RevealEvery: 2, PointAge: 8}

	right := newSlashTrail(0, 0, true, 15, arc)
	first := right.Path[0]
	wantX := math.Cos(-math.Pi/2.5) * 40
	wantY := math.Sin(-math.Pi/2.5) * 40 * 0.8
	if !approxEqual(first.X, wantX, 1e-9) || !approxEqual(first.Y, wantY, 1e-9) {
		t.Errorf("right Path[0] = (%v,%v), want (%v,%v)", first.X, first.Y, wantX, wantY)
	}
	for _, p := range right.Path {
		if p.X < 0 {
			t.Errorf("right-facing arc point %v is behind the player", p)
		}
	}

	left := newSlashTrail(0, 0, false, 15, arc)
	for i, p := range left.Path {
		if !approxEqual(p.X, -right.Path[i].X, 1e-9) || !approxEqual(p.Y, right.Path[i].Y, 1e-9) {
			t.Errorf("left Path[%d] = %v, want mirror of %v", i, p, right.Path[i])
		}
	}
}

func TestSlashTrailLifetime(t *testing.T) {
	s := newSlashTrail(0, 0, true, 15, SlashArc{Points: 6, Radius: 40, RevealEvery: 2, PointAge: 8})

	frames := 0
	maxPoints := 0
	for s.Advance() {
		frames++
		maxPoints = max(maxPoints, len(s.Points))
		if frames > 100 {
			t.Fatal("slash trail never expired")
		}
	}
	frames++

	// Last point is revealed on frame 12 and fades 7 frames later.
	if frames != 19 {
		t.Errorf("lifetime = %d frames, want 19", frames)
	}
	if s.revealed != 6 {
		t.Errorf("revealed = %d, want 6", s.revealed)
	}
	if maxPoints != 4 {
		t.Errorf("max visible points = %d, want 4", maxPoints)
	}
}

func TestSystemUpdateRetainsOrder(t *testing.T) {
	s := newTestSystem(1)
	s.entities = []Entity{
		&Particle{Life: 3, MaxLife: 3, Damping: 1},
		&Particle{Life: 1, MaxLife: 1, Damping: 1},
		newPulse(0, 0, 60, 5),
	}
	keep0, keep2 := s.entities[0], s.entities[2]

	s.Update()

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Entities()[0] != keep0 || s.Entities()[1] != keep2 {
		t.Error("Update reordered surviving entities")
	}
}

func TestTriggerCounts(t *testing.T) {
	config.Reset()

	tests := []struct {
		name      string
		trigger   func(s *System)
		particles int
		pulses    int
		slashes   int
	}{
		{"trail", func(s *System) { s.AddPlayerTrailParticle(0, 0, 5, 0) }, 1, 0, 0},
		{"jump", func(s *System) { s.AddJumpParticles(0, 0) }, 8, 0, 0},
		{"landing", func(s *System) { s.AddLandingParticles(0, 0) }, 5, 0, 0},
		{"collect small", func(s *System) { s.AddEssenceCollectEffect(0, 0, worlddata.Small) }, 8, 0, 0},
		{"collect large", func(s *System) { s.AddEssenceCollectEffect(0, 0, worlddata.Large) }, 12, 0, 0},
		{"collect crystal", func(s *System) { s.AddEssenceCollectEffect(0, 0, worlddata.Crystal) }, 15, 0, 0},
		{"light pulse", func(s *System) { s.AddLightPulse(0, 0) }, 12, 1, 0},
		{"slash", func(s *System) { s.AddSlashAttack(0, 0, true) }, 15, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSystem(7)
			tt.trigger(s)
			p, pu, sl := s.Counts()
			if p != tt.particles || pu != tt.pulses || sl != tt.slashes {
				t.Errorf("Counts() = %d, %d, %d; want %d, %d, %d", p, pu, sl, tt.particles, tt.pulses, tt.slashes)
			}
		})
	}
}

func TestJitterRanges(t *testing.T) {
	config.Reset()

	lo := New(fixedRand(0))
	lo.AddJumpParticles(100, 50)
	hi := New(fixedRand(0.999999))
	hi.AddJumpParticles(100, 50)

	pLo := lo.Entities()[0].(*Particle)
	pHi := hi.Entities()[0].(*Particle)
	if !approxEqual(pLo.X, 92, 1e-9) || !approxEqual(pHi.X, 108, 1e-4) {
		t.Errorf("jump particle x range = [%v, %v], want [92, 108)", pLo.X, pHi.X)
	}
	if pLo.Y != 58 {
		t.Errorf("jump particle y = %v, want 58", pLo.Y)
	}
	if pLo.VY < 0 || pHi.VY > 2 {
		t.Errorf("jump particle vy range = [%v, %v], want [0, 2)", pLo.VY, pHi.VY)
	}

	landing := New(fixedRand(0.5))
	landing.AddLandingParticles(0, 0)
	for _, e := range landing.Entities() {
		if p := e.(*Particle); p.VY > 0 {
			t.Errorf("landing particle vy = %v, want upward", p.VY)
		}
	}
}

func TestSlashSparksFollowFacing(t *testing.T) {
	config.Reset()

	for _, facingRight := range []bool{true, false} {
		s := newTestSystem(3)
		s.AddSlashAttack(0, 0, facingRight)
		for _, e := range s.Entities() {
			p, ok := e.(*Particle)
			if !ok {
				continue
			}
			if facingRight && p.VX <= 0 || !facingRight && p.VX >= 0 {
				t.Errorf("facingRight=%v: spark vx = %v points the wrong way", facingRight, p.VX)
			}
		}
	}
}

func TestSeededSystemsAreReproducible(t *testing.T) {
	config.Reset()

	a, b := newTestSystem(42), newTestSystem(42)
	for _, s := range []*System{a, b} {
		s.AddSlashAttack(10, 10, false)
		s.AddJumpParticles(5, 5)
		s.Update()
	}
	if a.Len() != b.Len() {
		t.Fatalf("Len() = %d and %d", a.Len(), b.Len())
	}
	for i := range a.Entities() {
		pa, ok := a.Entities()[i].(*Particle)
		if !ok {
			continue
		}
		pb := b.Entities()[i].(*Particle)
		if *pa != *pb {
			t.Errorf("entity %d differs: %+v vs %+v", i, *pa, *pb)
		}
	}
}

func TestClear(t *testing.T) {
	config.Reset()

	s := newTestSystem(1)
	s.AddLightPulse(0, 0)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", s.Len())
	}
	s.Update()
}

func TestSlashSegments(t *testing.T) {
	s := &SlashTrail{Points: []TrailPoint{
		{X: 0, Y: 0, Age: 6, MaxAge: 8},
		{X: 10, Y: 0, Age: 4, MaxAge: 8},
		{X: 20, Y: 5, Age: 2, MaxAge: 8},
	}}

	segs := s.Segments()
	if len(segs) != 2 {
		t.Fatalf("len(Segments()) = %d, want 2", len(segs))
	}
	if !approxEqual(segs[0].Alpha, 1-5.0/8, 1e-9) {
		t.Errorf("segs[0].Alpha = %v, want %v", segs[0].Alpha, 1-5.0/8)
	}
	if !approxEqual(segs[1].Alpha, 1-3.0/8, 1e-9) {
		t.Errorf("segs[1].Alpha = %v, want %v", segs[1].Alpha, 1-3.0/8)
	}
	if segs[0].Thickness != 7.5 || segs[1].Thickness != 7 {
		t.Errorf("thickness = %v, %v; want 7.5, 7", segs[0].Thickness, segs[1].Thickness)
	}
	if segs[1].X1 != 20 || segs[1].Y1 != 5 {
		t.Errorf("segs[1] ends at (%v,%v), want (20,5)", segs[1].X1, segs[1].Y1)
	}

	single := &SlashTrail{Points: []TrailPoint{{Age: 1, MaxAge: 8}}}
	if single.Segments() != nil {
		t.Error("single point produced segments")
	}
}
