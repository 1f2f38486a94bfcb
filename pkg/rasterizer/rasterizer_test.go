package rasterizer

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-nocturne/nocturne/pkg/errors"
	"github.com/go-nocturne/nocturne/pkg/graphics"
	"github.com/go-nocturne/nocturne/pkg/scene"
)

// memorySink copies each frame so tests can inspect pixels after the
// renderer reuses its buffer.
type memorySink struct {
	frames []*image.RGBA
}

func (s *memorySink) WriteFrame(tick int, img image.Image) error {
	bounds := img.Bounds()
	cp := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cp.Set(x, y, img.At(x, y))
		}
	}
	s.frames = append(s.frames, cp)
	return nil
}

func (s *memorySink) Close() error { return nil }

func testConfig(sink FrameSink) Config {
	return Config{
		Bounds: graphics.RectFromLTWH(0, 0, 20, 10),
		Scale:  16,
		Sink:   sink,
	}
}

func countColor(img *image.RGBA, want graphics.Color) int {
	target := color.RGBAModel.Convert(want.NRGBA())
	n := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.At(x, y) == target {
				n++
			}
		}
	}
	return n
}

func TestNewRendererValidation(t *testing.T) {
	sink := &memorySink{}
	cases := []struct {
		name string
		cfg  Config
	}{
		{"empty bounds", Config{Scale: 16, Sink: sink}},
		{"zero scale", Config{Bounds: graphics.RectFromLTWH(0, 0, 20, 10), Sink: sink}},
		{"nil sink", Config{Bounds: graphics.RectFromLTWH(0, 0, 20, 10), Scale: 16}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRenderer(tc.cfg); errors.KindOf(err) != errors.KindConfig {
				t.Errorf("expected KindConfig, got %v", err)
			}
		})
	}
}

func TestFrameSize(t *testing.T) {
	r, err := NewRenderer(testConfig(&memorySink{}))
	if err != nil {
		t.Fatal(err)
	}
	w, h := r.FrameSize()
	if w != 320 || h != 160 {
		t.Errorf("frame size = %dx%d, want 320x160", w, h)
	}
}

func TestRenderFrameContents(t *testing.T) {
	sink := &memorySink{}
	r, err := NewRenderer(testConfig(sink))
	if err != nil {
		t.Fatal(err)
	}

	skyColor := graphics.RGB(0x18, 0x2b, 0x4d)
	state := scene.SceneState{
		Tick:          1,
		Elapsed:       86500,
		ClockText:     "00:01:40",
		SkyTint:       true,
		SkyColorIndex: 100,
		SkyColor:      skyColor,
		StarsVisible:  true,
		Stars: []scene.Star{
			{Position: graphics.Offset{X: 10, Y: 2}, Size: 40},
		},
		Snowing: true,
		Snowflakes: []graphics.Offset{
			{X: 5, Y: 5},
			{X: 15, Y: 7},
		},
		GroundSnow: []graphics.Offset{
			{X: 3, Y: 9.9},
		},
		Message: scene.MessageLookSnowing,
	}

	if err := r.RenderFrame(state); err != nil {
		t.Fatal(err)
	}
	if len(sink.frames) != 1 {
		t.Fatalf("sink saw %d frames, want 1", len(sink.frames))
	}
	img := sink.frames[0]

	// Sky tint fills the background.
	if got := img.At(0, 0); got != color.RGBAModel.Convert(skyColor.NRGBA()) {
		t.Errorf("corner pixel = %v, want sky tint", got)
	}

	if countColor(img, graphics.ColorSilver) == 0 {
		t.Error("no star pixels drawn")
	}
	if countColor(img, graphics.ColorSnow) < 3*4 {
		t.Error("too few snow pixels drawn")
	}
	if countColor(img, graphics.ColorYellow) == 0 {
		t.Error("no message pixels drawn")
	}
	if countColor(img, graphics.ColorWhite) == 0 {
		t.Error("no clock pixels drawn")
	}
}

func TestRenderFrameBlackBeforeMidnight(t *testing.T) {
	sink := &memorySink{}
	r, err := NewRenderer(testConfig(sink))
	if err != nil {
		t.Fatal(err)
	}

	state := scene.SceneState{
		Tick:      1,
		Elapsed:   72600,
		ClockText: "20:10:00",
	}
	if err := r.RenderFrame(state); err != nil {
		t.Fatal(err)
	}

	img := sink.frames[0]
	if got := img.At(0, img.Bounds().Dy()-1); got != color.RGBAModel.Convert(graphics.ColorBlack.NRGBA()) {
		t.Errorf("bottom corner = %v, want black", got)
	}
	if countColor(img, graphics.ColorYellow) != 0 {
		t.Error("message pixels drawn with no active message")
	}
}

func TestPNGDirSink(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewPNGDirSink(filepath.Join(dir, "frames"))
	if err != nil {
		t.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := sink.WriteFrame(7, img); err != nil {
		t.Fatal(err)
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "frames", "frame_0007.png")); err != nil {
		t.Errorf("expected frame file: %v", err)
	}
}

func TestGIFSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "night.gif")
	sink, err := NewGIFSink(path, 10)
	if err != nil {
		t.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 1; i <= 3; i++ {
		if err := sink.WriteFrame(i, img); err != nil {
			t.Fatal(err)
		}
	}
	if sink.FrameCount() != 3 {
		t.Errorf("buffered %d frames, want 3", sink.FrameCount())
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected gif file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("gif file is empty")
	}
}

func TestGIFSinkValidation(t *testing.T) {
	if _, err := NewGIFSink("x.gif", 0); errors.KindOf(err) != errors.KindConfig {
		t.Errorf("expected KindConfig for zero delay, got %v", err)
	}

	sink, err := NewGIFSink(filepath.Join(t.TempDir(), "empty.gif"), 5)
	if err != nil {
		t.Fatal(err)
	}
	if err := sink.Close(); errors.KindOf(err) != errors.KindEncode {
		t.Errorf("expected KindEncode closing with no frames, got %v", err)
	}
}
