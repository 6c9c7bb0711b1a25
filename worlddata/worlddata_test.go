package worlddata

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/automoto/lumina/gamemath"
)

var (
	gray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func totalArea(rects []gamemath.Rect) float64 {
	var a float64
	for _, r := range rects {
		a += r.Area()
	}
	return a
}

func TestDefaultLayout(t *testing.T) {
	l := Default()
	if err := l.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got := len(l.Platforms); got != 62 {
		t.Errorf("len(Platforms) = %d, want 62", got)
	}
	if got := len(l.Essences); got != 21 {
		t.Errorf("len(Essences) = %d, want 21", got)
	}
	if l.Spawn != (Point{X: 100, Y: 900}) {
		t.Errorf("Spawn = %v, want {100 900}", l.Spawn)
	}
	if l.Bounds != BoundsOf(l.Platforms) {
		t.Errorf("Bounds = %v, want %v", l.Bounds, BoundsOf(l.Platforms))
	}

	// Each call hands out a fresh copy.
	l.Platforms[0].X = -1
	if Default().Platforms[0].X == -1 {
		t.Error("Default() shares platform storage between calls")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Small, Large, Crystal} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if _, err := ParseKind("gem"); err == nil {
		t.Error("ParseKind(gem) succeeded")
	}
}

func TestPixelClassification(t *testing.T) {
	tests := []struct {
		name     string
		c        color.Color
		platform bool
		spawn    bool
	}{
		{"mid gray", gray, true, false},
		{"dark gray", color.RGBA{R: 60, G: 64, B: 58, A: 255}, true, false},
		{"too dark", color.RGBA{R: 20, G: 20, B: 20, A: 255}, false, false},
		{"too light", color.RGBA{R: 220, G: 220, B: 220, A: 255}, false, false},
		{"tinted", color.RGBA{R: 150, G: 100, B: 100, A: 255}, false, false},
		{"transparent gray", color.NRGBA{R: 128, G: 128, B: 128, A: 40}, false, false},
		{"white", white, false, true},
		{"near white", color.RGBA{R: 245, G: 250, B: 241, A: 255}, false, true},
		{"black", black, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPlatformPixel(tt.c); got != tt.platform {
				t.Errorf("IsPlatformPixel = %v, want %v", got, tt.platform)
			}
			if got := IsSpawnPixel(tt.c); got != tt.spawn {
				t.Errorf("IsSpawnPixel = %v, want %v", got, tt.spawn)
			}
		})
	}
}

func fillImage(w, h int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, bg)
		}
	}
	return img
}

func TestScanRuns(t *testing.T) {
	img := fillImage(6, 2, black)
	// Row 0: two runs, row 1: one run touching the right edge.
	img.Set(0, 0, gray)
	img.Set(1, 0, gray)
	img.Set(3, 0, gray)
	img.Set(4, 1, gray)
	img.Set(5, 1, gray)
	img.Set(2, 1, white)

	runs, spawn := ScanRuns(img)
	want := []gamemath.Rect{
		{X: 0, Y: 0, W: 2, H: 1},
		{X: 3, Y: 0, W: 1, H: 1},
		{X: 4, Y: 1, W: 2, H: 1},
	}
	if len(runs) != len(want) {
		t.Fatalf("runs = %v, want %v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("runs[%d] = %v, want %v", i, runs[i], want[i])
		}
	}
	if spawn == nil || *spawn != (image.Point{X: 2, Y: 1}) {
		t.Errorf("spawn = %v, want (2,1)", spawn)
	}
}

func TestMergeRects(t *testing.T) {
	tests := []struct {
		name string
		in   []gamemath.Rect
		want int
	}{
		{
			name: "stacked runs become one block",
			in: []gamemath.Rect{
				{X: 0, Y: 0, W: 4, H: 1},
				{X: 0, Y: 1, W: 4, H: 1},
				{X: 0, Y: 2, W: 4, H: 1},
			},
			want: 1,
		},
		{
			name: "side by side columns join after vertical pass",
			in: []gamemath.Rect{
				{X: 0, Y: 0, W: 2, H: 1},
				{X: 0, Y: 1, W: 2, H: 1},
				{X: 2, Y: 0, W: 3, H: 1},
				{X: 2, Y: 1, W: 3, H: 1},
			},
			want: 1,
		},
		{
			name: "gap is not merged",
			in: []gamemath.Rect{
				{X: 0, Y: 0, W: 4, H: 1},
				{X: 0, Y: 2, W: 4, H: 1},
			},
			want: 2,
		},
		{
			name: "different widths are not merged",
			in: []gamemath.Rect{
				{X: 0, Y: 0, W: 4, H: 1},
				{X: 0, Y: 1, W: 3, H: 1},
			},
			want: 2,
		},
		{
			name: "horizontal gap is not merged",
			in: []gamemath.Rect{
				{X: 0, Y: 0, W: 2, H: 1},
				{X: 3, Y: 0, W: 2, H: 1},
			},
			want: 2,
		},
		{
			name: "staircase keeps its steps",
			in: []gamemath.Rect{
				{X: 0, Y: 0, W: 1, H: 1},
				{X: 0, Y: 1, W: 2, H: 1},
				{X: 0, Y: 2, W: 3, H: 1},
			},
			want: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeRects(tt.in)
			if len(got) != tt.want {
				t.Errorf("len(MergeRects) = %d (%v), want %d", len(got), got, tt.want)
			}
			if a, b := totalArea(got), totalArea(tt.in); a != b {
				t.Errorf("area = %v, want %v", a, b)
			}
			for i := range got {
				for j := i + 1; j < len(got); j++ {
					if got[i].Overlaps(got[j]) {
						t.Errorf("merged rects overlap: %v and %v", got[i], got[j])
					}
				}
			}
		})
	}
}

func TestFromBitmap(t *testing.T) {
	img := fillImage(10, 8, black)
	for x := 0; x < 10; x++ {
		img.Set(x, 6, gray)
		img.Set(x, 7, gray)
	}
	for x := 3; x < 6; x++ {
		img.Set(x, 3, gray)
	}
	img.Set(1, 5, white)

	l, err := FromBitmap("test", img, 10)
	if err != nil {
		t.Fatalf("FromBitmap: %v", err)
	}
	want := []gamemath.Rect{
		{X: 30, Y: 30, W: 30, H: 10},
		{X: 0, Y: 60, W: 100, H: 20},
	}
	if len(l.Platforms) != len(want) {
		t.Fatalf("Platforms = %v, want %v", l.Platforms, want)
	}
	for i := range want {
		if l.Platforms[i] != want[i] {
			t.Errorf("Platforms[%d] = %v, want %v", i, l.Platforms[i], want[i])
		}
	}
	if l.Bounds != (Bounds{Width: 100, Height: 80}) {
		t.Errorf("Bounds = %v, want 100x80", l.Bounds)
	}
	if l.Spawn != (Point{X: 15, Y: 55}) {
		t.Errorf("Spawn = %v, want {15 55}", l.Spawn)
	}
}

func TestFromBitmapWithoutSpawnPixel(t *testing.T) {
	img := fillImage(4, 4, black)
	img.Set(1, 2, gray)
	img.Set(2, 2, gray)

	l, err := FromBitmap("nospawn", img, 5)
	if err != nil {
		t.Fatalf("FromBitmap: %v", err)
	}
	if l.Spawn != (Point{X: 10, Y: 5}) {
		t.Errorf("Spawn = %v, want above the first platform {10 5}", l.Spawn)
	}
}

func TestFromBitmapErrors(t *testing.T) {
	if _, err := FromBitmap("empty", fillImage(4, 4, black), 10); !errors.Is(err, ErrNoPlatforms) {
		t.Errorf("empty image err = %v, want ErrNoPlatforms", err)
	}
	if _, err := FromBitmap("scale", fillImage(1, 1, gray), 0); err == nil {
		t.Error("zero scale succeeded")
	}
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="6">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="144" width="320" height="16"/>
  <object id="2" x="400" y="100" width="40" height="8"/>
 </objectgroup>
 <objectgroup id="2" name="Essences">
  <object id="3" class="crystal" x="40" y="120"/>
  <object id="4" type="large" x="80" y="120"/>
  <object id="5" x="120" y="120">
   <properties>
    <property name="kind" value="small"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="6" x="16" y="130"/>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"worlds/cave.tmx": {Data: []byte(testTMX)},
	}

	l, err := LoadTMX(fsys, "worlds/cave.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	if l.Name != "cave" {
		t.Errorf("Name = %q, want cave", l.Name)
	}
	if len(l.Platforms) != 2 {
		t.Fatalf("len(Platforms) = %d, want 2", len(l.Platforms))
	}
	if l.Platforms[0] != (gamemath.Rect{X: 0, Y: 144, W: 320, H: 16}) {
		t.Errorf("Platforms[0] = %v", l.Platforms[0])
	}
	// The second platform sticks out past the 320 px tile grid.
	if l.Bounds != (Bounds{Width: 440, Height: 160}) {
		t.Errorf("Bounds = %v, want 440x160", l.Bounds)
	}
	wantKinds := []Kind{Crystal, Large, Small}
	if len(l.Essences) != len(wantKinds) {
		t.Fatalf("len(Essences) = %d, want %d", len(l.Essences), len(wantKinds))
	}
	for i, k := range wantKinds {
		if l.Essences[i].Kind != k {
			t.Errorf("Essences[%d].Kind = %v, want %v", i, l.Essences[i].Kind, k)
		}
	}
	if l.Spawn != (Point{X: 16, Y: 130}) {
		t.Errorf("Spawn = %v, want {16 130}", l.Spawn)
	}

	all, names, err := LoadAllTMX(fsys, "worlds")
	if err != nil {
		t.Fatalf("LoadAllTMX: %v", err)
	}
	if len(names) != 1 || names[0] != "cave" || all["cave"] == nil {
		t.Errorf("LoadAllTMX names = %v", names)
	}
}

func TestLoadAllTMXEmptyDir(t *testing.T) {
	if _, _, err := LoadAllTMX(fstest.MapFS{}, "worlds"); err == nil {
		t.Error("LoadAllTMX on empty fs succeeded")
	}
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func bitmapWorld() *image.RGBA {
	img := fillImage(8, 4, black)
	for x := 0; x < 8; x++ {
		img.Set(x, 3, gray)
	}
	return img
}

func TestFetchHTTP(t *testing.T) {
	data := encodePNG(t, bitmapWorld())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/map.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	img, err := Fetch(context.Background(), srv.URL+"/map.png")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{X: 8, Y: 4}) {
		t.Errorf("size = %v, want 8x4", got)
	}

	if _, err := Fetch(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Error("Fetch(missing) succeeded")
	}
}

func TestFetchFileAndErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	if err := os.WriteFile(path, encodePNG(t, bitmapWorld()), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Fetch(context.Background(), path); err != nil {
		t.Errorf("Fetch(path) = %v", err)
	}

	garbage := filepath.Join(t.TempDir(), "map.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Fetch(context.Background(), garbage); err == nil {
		t.Error("Fetch(garbage) succeeded")
	}

	if _, err := Fetch(context.Background(), "ftp://example.com/map.png"); !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("Fetch(ftp) err = %v, want ErrUnsupportedSource", err)
	}
	if _, err := Fetch(context.Background(), ""); !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("Fetch(\"\") err = %v, want ErrUnsupportedSource", err)
	}
}

func TestLoadAsync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	if err := os.WriteFile(path, encodePNG(t, bitmapWorld()), 0o644); err != nil {
		t.Fatal(err)
	}

	res := <-LoadAsync(context.Background(), path, 10)
	if res.Err != nil {
		t.Fatalf("LoadAsync: %v", res.Err)
	}
	if len(res.Layout.Platforms) != 1 {
		t.Errorf("Platforms = %v, want one merged run", res.Layout.Platforms)
	}

	res = <-LoadAsync(context.Background(), filepath.Join(t.TempDir(), "nope.png"), 10)
	if res.Err == nil || res.Layout != nil {
		t.Errorf("missing file result = %+v, want error", res)
	}
}

func TestReady(t *testing.T) {
	ch := Ready(Default(), nil)
	res, ok := <-ch
	if !ok || res.Layout == nil {
		t.Fatal("Ready channel empty")
	}
	if _, ok := <-ch; ok {
		t.Error("Ready channel not closed after one result")
	}
}

func TestLoadAsyncTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	res := <-LoadAsyncTimeout(srv.URL+"/slow.png", 10, 50*time.Millisecond)
	if !errors.Is(res.Err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", res.Err)
	}
}
