// Package rasterizer renders scene snapshots into RGBA frames.
//
// The renderer maps the scene's abstract coordinate space onto a pixel grid
// at a fixed scale, redraws every element from the snapshot each frame
// (there is no retained drawing state beyond the reused pixel buffer), and
// hands finished frames to a FrameSink for encoding.
package rasterizer

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-nocturne/nocturne/pkg/errors"
	"github.com/go-nocturne/nocturne/pkg/graphics"
	"github.com/go-nocturne/nocturne/pkg/scene"
)

// Config describes a raster renderer.
type Config struct {
	// Bounds is the scene coordinate space being rendered; it must match
	// the scene machine's bounds.
	Bounds graphics.Rect

	// Scale is the number of pixels per scene unit.
	Scale float64

	// Sink receives each finished frame.
	Sink FrameSink

	// Colors for scene elements. Zero values take the stock palette:
	// silver stars, snow-white flakes, white clock, yellow message.
	StarColor    graphics.Color
	SnowColor    graphics.Color
	ClockColor   graphics.Color
	MessageColor graphics.Color
}

// Renderer draws scene states into a reused RGBA buffer.
type Renderer struct {
	cfg    Config
	img    *image.RGBA
	width  int
	height int
	face   font.Face
}

// NewRenderer builds a raster renderer.
func NewRenderer(cfg Config) (*Renderer, error) {
	const op = "rasterizer.NewRenderer"
	if cfg.Bounds.IsEmpty() {
		return nil, errors.Newf(op, errors.KindConfig, "scene bounds enclose no area")
	}
	if cfg.Scale <= 0 {
		return nil, errors.Newf(op, errors.KindConfig, "scale %g is not positive", cfg.Scale)
	}
	if cfg.Sink == nil {
		return nil, errors.Newf(op, errors.KindConfig, "frame sink is required")
	}
	if cfg.StarColor == graphics.ColorTransparent {
		cfg.StarColor = graphics.ColorSilver
	}
	if cfg.SnowColor == graphics.ColorTransparent {
		cfg.SnowColor = graphics.ColorSnow
	}
	if cfg.ClockColor == graphics.ColorTransparent {
		cfg.ClockColor = graphics.ColorWhite
	}
	if cfg.MessageColor == graphics.ColorTransparent {
		cfg.MessageColor = graphics.ColorYellow
	}

	width := int(cfg.Bounds.Width() * cfg.Scale)
	height := int(cfg.Bounds.Height() * cfg.Scale)
	if width <= 0 || height <= 0 {
		return nil, errors.Newf(op, errors.KindConfig, "frame size %dx%d is degenerate", width, height)
	}

	return &Renderer{
		cfg:    cfg,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
		face:   basicfont.Face7x13,
	}, nil
}

// FrameSize returns the pixel dimensions of rendered frames.
func (r *Renderer) FrameSize() (width, height int) {
	return r.width, r.height
}

// RenderFrame draws one scene snapshot and passes it to the sink.
func (r *Renderer) RenderFrame(state scene.SceneState) error {
	background := graphics.ColorBlack
	if state.SkyTint {
		background = state.SkyColor
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(background.NRGBA()), image.Point{}, draw.Src)

	if state.StarsVisible {
		for _, star := range state.Stars {
			p := r.toPixel(star.Position)
			// The star size is an area-like magnitude; keep the drawn
			// cross between one and four pixels of arm length.
			arm := 1 + int(star.Size)/16
			if arm > 4 {
				arm = 4
			}
			r.drawCross(p, arm, r.cfg.StarColor)
		}
	}

	for _, flake := range state.Snowflakes {
		r.drawDot(r.toPixel(flake), r.cfg.SnowColor)
	}
	for _, p := range state.GroundSnow {
		r.drawDot(r.toPixel(p), r.cfg.SnowColor)
	}

	r.drawClock(state.ClockText)
	if text := state.Message.Text(); text != "" {
		r.drawMessage(text)
	}

	if err := r.cfg.Sink.WriteFrame(state.Tick, r.img); err != nil {
		return errors.New("rasterizer.RenderFrame", errors.KindEncode, err)
	}
	return nil
}

// toPixel maps a scene offset to frame pixel coordinates.
func (r *Renderer) toPixel(o graphics.Offset) image.Point {
	return image.Point{
		X: int((o.X - r.cfg.Bounds.Left) * r.cfg.Scale),
		Y: int((o.Y - r.cfg.Bounds.Top) * r.cfg.Scale),
	}
}

// drawDot fills a 2x2 pixel block.
func (r *Renderer) drawDot(p image.Point, c graphics.Color) {
	rgba := c.NRGBA()
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			x, y := p.X+dx, p.Y+dy
			if x >= 0 && x < r.width && y >= 0 && y < r.height {
				r.img.Set(x, y, rgba)
			}
		}
	}
}

// drawCross draws a plus-shaped star with the given arm length.
func (r *Renderer) drawCross(p image.Point, arm int, c graphics.Color) {
	rgba := c.NRGBA()
	for d := -arm; d <= arm; d++ {
		if x := p.X + d; x >= 0 && x < r.width && p.Y >= 0 && p.Y < r.height {
			r.img.Set(x, p.Y, rgba)
		}
		if y := p.Y + d; y >= 0 && y < r.height && p.X >= 0 && p.X < r.width {
			r.img.Set(p.X, y, rgba)
		}
	}
}

// drawClock renders the timer text in the top-right corner.
func (r *Renderer) drawClock(text string) {
	const margin = 8
	width := font.MeasureString(r.face, text).Ceil()
	r.drawText(text, r.width-width-margin, margin+r.face.Metrics().Ascent.Ceil(), r.cfg.ClockColor)
}

// drawMessage renders the active message centered in the frame.
func (r *Renderer) drawMessage(text string) {
	width := font.MeasureString(r.face, text).Ceil()
	r.drawText(text, (r.width-width)/2, r.height/2, r.cfg.MessageColor)
}

func (r *Renderer) drawText(text string, x, y int, c graphics.Color) {
	drawer := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}
