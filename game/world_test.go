package game

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/systems"
	"github.com/automoto/lumina/worlddata"
)

func TestOpenWorld(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		wantSource string
		wantLayout string
		wantErr    bool
	}{
		{"default", Options{}, worlddata.DefaultName, worlddata.DefaultName, false},
		{"explicit default", Options{World: "lumina"}, worlddata.DefaultName, worlddata.DefaultName, false},
		{"embedded", Options{World: "caverns"}, "caverns", "caverns", false},
		{"tmx file", Options{World: filepath.Join("..", "assets", "worlds", "spire.tmx")}, filepath.Join("..", "assets", "worlds", "spire.tmx"), "spire", false},
		{"unknown", Options{World: "atlantis"}, "atlantis", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, pending := openWorld(tt.opts)
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
			res := <-pending
			if tt.wantErr {
				if res.Err == nil {
					t.Error("expected an error")
				}
				return
			}
			if res.Err != nil {
				t.Fatalf("unexpected error: %v", res.Err)
			}
			if res.Layout.Name != tt.wantLayout {
				t.Errorf("layout = %q, want %q", res.Layout.Name, tt.wantLayout)
			}
		})
	}
}

func TestPendingWinsOverWorld(t *testing.T) {
	layout := worlddata.Default()
	layout.Name = "injected"
	source, pending := openWorld(Options{World: "caverns", Pending: worlddata.Ready(layout, nil)})
	if source != "pending" {
		t.Errorf("source = %q, want pending", source)
	}
	if res := <-pending; res.Layout.Name != "injected" {
		t.Errorf("layout = %q, want injected", res.Layout.Name)
	}
}

func TestBuildWorldFallsBackOnBadMap(t *testing.T) {
	e := BuildWorld(Options{
		MapSource: filepath.Join(t.TempDir(), "missing.png"),
		Seed:      1,
	})

	deadline := time.Now().Add(5 * time.Second)
	for !systems.IsWorldReady(e) {
		if time.Now().After(deadline) {
			t.Fatal("world never became ready")
		}
		e.Update()
		time.Sleep(time.Millisecond)
	}

	world := systems.GetWorld(e)
	if world.Layout.Name != worlddata.DefaultName {
		t.Errorf("layout = %q, want fallback %q", world.Layout.Name, worlddata.DefaultName)
	}
	if world.State != components.WorldReady {
		t.Errorf("State = %v", world.State)
	}
}

func TestBuildWorldKeepsBestRun(t *testing.T) {
	e := BuildWorld(Options{Seed: 1, Best: systems.BestRun{Essences: 4, Score: 9}})
	session := systems.GetSession(e)
	if session.BestEssences != 4 || session.BestScore != 9 {
		t.Errorf("best = %d/%d, want 4/9", session.BestEssences, session.BestScore)
	}
	if session.EssenceCount != 0 || session.Score != 0 {
		t.Errorf("run counters not zero: %+v", session)
	}
}
