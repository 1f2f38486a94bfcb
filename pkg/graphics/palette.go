package graphics

import (
	"sort"

	"github.com/go-nocturne/nocturne/pkg/errors"
)

// DefaultSkyPaletteSize is one color per virtual second of the six-hour
// window between midnight and sunrise.
const DefaultSkyPaletteSize = 6 * 60 * 60

// ColorSource maps a numeric index to a color. Implementations must treat
// an out-of-range index as a recoverable condition, not a fault: ColorAt
// reports ok=false and callers suppress the lookup.
type ColorSource interface {
	// Size returns the number of entries in the color table.
	Size() int

	// ColorAt returns the color at index i. ok is false when i is outside
	// [0, Size()), in which case the returned color is undefined.
	ColorAt(i int) (c Color, ok bool)
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// SkyPalette is a precomputed color table built from gradient stops.
// It implements ColorSource; index 0 is the first post-midnight second
// and the final index is the last second before sunrise.
type SkyPalette struct {
	table []Color
}

// DefaultDawnStops returns the stops for the stock midnight-to-sunrise
// fade: black holding through the small hours, then a deep blue lifting
// into a pale dawn orange.
func DefaultDawnStops() []GradientStop {
	return []GradientStop{
		{Position: 0.0, Color: ColorBlack},
		{Position: 0.5, Color: ColorBlack},
		{Position: 0.75, Color: RGB(0x18, 0x2b, 0x4d)},
		{Position: 0.92, Color: RGB(0x6e, 0x8f, 0xc9)},
		{Position: 1.0, Color: RGB(0xf5, 0xc9, 0x7f)},
	}
}

// NewSkyPalette builds a palette of size entries by interpolating between
// the given stops. Stops must be sorted by position within [0, 1] and at
// least two are required.
func NewSkyPalette(size int, stops []GradientStop) (*SkyPalette, error) {
	const op = "graphics.NewSkyPalette"
	if size <= 0 {
		return nil, errors.Newf(op, errors.KindConfig, "palette size %d is not positive", size)
	}
	if len(stops) < 2 {
		return nil, errors.Newf(op, errors.KindConfig, "need at least two gradient stops, got %d", len(stops))
	}
	if !sort.SliceIsSorted(stops, func(i, j int) bool {
		return stops[i].Position < stops[j].Position
	}) {
		return nil, errors.Newf(op, errors.KindConfig, "gradient stops are not sorted by position")
	}
	if stops[0].Position < 0 || stops[len(stops)-1].Position > 1 {
		return nil, errors.Newf(op, errors.KindConfig, "gradient stop positions must lie within [0, 1]")
	}

	table := make([]Color, size)
	for i := range table {
		t := 0.0
		if size > 1 {
			t = float64(i) / float64(size-1)
		}
		table[i] = evaluateStops(stops, t)
	}
	return &SkyPalette{table: table}, nil
}

// DefaultSkyPalette returns the stock dawn palette with one entry per
// second of the midnight-to-sunrise window.
func DefaultSkyPalette() *SkyPalette {
	p, err := NewSkyPalette(DefaultSkyPaletteSize, DefaultDawnStops())
	if err != nil {
		// The stock stops are compile-time constants; this cannot fail.
		panic(err)
	}
	return p
}

// Size returns the number of entries in the palette.
func (p *SkyPalette) Size() int {
	return len(p.table)
}

// ColorAt returns the palette entry at index i, reporting ok=false for
// indexes outside the table.
func (p *SkyPalette) ColorAt(i int) (Color, bool) {
	if i < 0 || i >= len(p.table) {
		return ColorTransparent, false
	}
	return p.table[i], true
}

// evaluateStops resolves the gradient color at position t by linear
// interpolation between the surrounding stops.
func evaluateStops(stops []GradientStop, t float64) Color {
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Position {
			continue
		}
		prev := stops[i-1]
		span := stops[i].Position - prev.Position
		if span <= 0 {
			return stops[i].Color
		}
		local := (t - prev.Position) / span
		return LerpColor(prev.Color, stops[i].Color, local)
	}
	return last.Color
}
