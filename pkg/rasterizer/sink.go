package rasterizer

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"

	"github.com/go-nocturne/nocturne/pkg/errors"
)

// FrameSink receives finished frames from the renderer. The image passed to
// WriteFrame is a reused buffer: implementations must encode or copy it
// before returning.
type FrameSink interface {
	// WriteFrame accepts the frame for the given tick ordinal.
	WriteFrame(tick int, img image.Image) error

	// Close finalizes any deferred encoding.
	Close() error
}

// PNGDirSink writes each frame as frame_NNNN.png in a directory.
type PNGDirSink struct {
	dir string
}

// NewPNGDirSink creates the output directory if needed.
func NewPNGDirSink(dir string) (*PNGDirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.New("rasterizer.NewPNGDirSink", errors.KindEncode, err)
	}
	return &PNGDirSink{dir: dir}, nil
}

func (s *PNGDirSink) WriteFrame(tick int, img image.Image) error {
	const op = "rasterizer.PNGDirSink.WriteFrame"
	path := filepath.Join(s.dir, fmt.Sprintf("frame_%04d.png", tick))
	f, err := os.Create(path)
	if err != nil {
		return errors.New(op, errors.KindEncode, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.New(op, errors.KindEncode, err)
	}
	if err := f.Close(); err != nil {
		return errors.New(op, errors.KindEncode, err)
	}
	return nil
}

// Close is a no-op; PNG frames are written eagerly.
func (s *PNGDirSink) Close() error {
	return nil
}

// GIFSink accumulates palettized frames and writes one animated GIF on
// Close. It stands in for the original's video encode without reaching
// outside the standard image stack.
type GIFSink struct {
	path   string
	delay  int // per-frame delay in 100ths of a second
	frames []*image.Paletted
}

// NewGIFSink creates a sink that writes to path with the given per-frame
// delay in hundredths of a second.
func NewGIFSink(path string, delay int) (*GIFSink, error) {
	if delay <= 0 {
		return nil, errors.Newf("rasterizer.NewGIFSink", errors.KindConfig, "frame delay %d is not positive", delay)
	}
	return &GIFSink{path: path, delay: delay}, nil
}

func (s *GIFSink) WriteFrame(tick int, img image.Image) error {
	paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, image.Point{})
	s.frames = append(s.frames, paletted)
	return nil
}

// FrameCount returns the number of frames buffered so far.
func (s *GIFSink) FrameCount() int {
	return len(s.frames)
}

// Close encodes the accumulated animation.
func (s *GIFSink) Close() error {
	const op = "rasterizer.GIFSink.Close"
	if len(s.frames) == 0 {
		return errors.Newf(op, errors.KindEncode, "no frames to encode")
	}

	anim := &gif.GIF{
		Image: s.frames,
		Delay: make([]int, len(s.frames)),
	}
	for i := range anim.Delay {
		anim.Delay[i] = s.delay
	}

	f, err := os.Create(s.path)
	if err != nil {
		return errors.New(op, errors.KindEncode, err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return errors.New(op, errors.KindEncode, err)
	}
	if err := f.Close(); err != nil {
		return errors.New(op, errors.KindEncode, err)
	}
	return nil
}
