package timeline

import (
	stderrors "errors"
	"testing"

	"github.com/go-nocturne/nocturne/pkg/errors"
)

func TestNewClockValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  ClockConfig
	}{
		{"negative offset", ClockConfig{OffsetSeconds: -1, VirtualDuration: 100, FrameCount: 10}},
		{"zero duration", ClockConfig{OffsetSeconds: 0, VirtualDuration: 0, FrameCount: 10}},
		{"zero frames", ClockConfig{OffsetSeconds: 0, VirtualDuration: 100, FrameCount: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClock(tc.cfg)
			if err == nil {
				t.Fatal("expected an error")
			}
			var structured *errors.Error
			if !stderrors.As(err, &structured) || structured.Kind != errors.KindConfig {
				t.Errorf("expected KindConfig, got %v", err)
			}
		})
	}
}

func TestAdvanceWholeSeconds(t *testing.T) {
	// 10 virtual hours over 60 frames: 600 seconds per tick.
	clock, err := NewClock(ClockConfig{
		OffsetSeconds:   72000,
		VirtualDuration: 36000,
		FrameCount:      60,
	})
	if err != nil {
		t.Fatal(err)
	}

	if clock.Elapsed() != 72000 {
		t.Fatalf("initial elapsed = %d, want 72000", clock.Elapsed())
	}
	if clock.String() != "20:00:00" {
		t.Fatalf("initial display = %q", clock.String())
	}

	clock.Advance()
	if clock.Elapsed() != 72600 {
		t.Errorf("elapsed after one tick = %d, want 72600", clock.Elapsed())
	}
	if clock.String() != "20:10:00" {
		t.Errorf("display after one tick = %q, want 20:10:00", clock.String())
	}
	if clock.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", clock.Ticks())
	}
}

func TestFractionalAccumulation(t *testing.T) {
	// 100 virtual seconds over 40 frames: 2.5 seconds per tick. The integer
	// view must floor the accumulator, not round it.
	clock, err := NewClock(ClockConfig{
		OffsetSeconds:   0,
		VirtualDuration: 100,
		FrameCount:      40,
	})
	if err != nil {
		t.Fatal(err)
	}

	clock.Advance()
	if clock.Elapsed() != 2 {
		t.Errorf("elapsed after 2.5s = %d, want 2", clock.Elapsed())
	}
	clock.Advance()
	if clock.Elapsed() != 5 {
		t.Errorf("elapsed after 5.0s = %d, want 5", clock.Elapsed())
	}
	clock.Advance()
	if clock.Elapsed() != 7 {
		t.Errorf("elapsed after 7.5s = %d, want 7", clock.Elapsed())
	}
}

func TestElapsedMonotonic(t *testing.T) {
	clock, err := NewClock(ClockConfig{
		OffsetSeconds:   72000,
		VirtualDuration: 36000,
		FrameCount:      3000,
	})
	if err != nil {
		t.Fatal(err)
	}

	prev := clock.Elapsed()
	for i := 0; i < 3000; i++ {
		clock.Advance()
		if clock.Elapsed() < prev {
			t.Fatalf("elapsed decreased at tick %d", i+1)
		}
		prev = clock.Elapsed()
	}
	if prev != 72000+36000 {
		t.Errorf("final elapsed = %d, want 108000", prev)
	}
}

func TestDisplayWrapsPastMidnight(t *testing.T) {
	// Elapsed is never reduced, but the display wraps hours modulo 24.
	clock, err := NewClock(ClockConfig{
		OffsetSeconds:   86400 + 3725, // next-day 01:02:05
		VirtualDuration: 10,
		FrameCount:      1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if clock.Elapsed() != 90125 {
		t.Errorf("elapsed = %d, want 90125", clock.Elapsed())
	}
	if clock.String() != "01:02:05" {
		t.Errorf("display = %q, want 01:02:05", clock.String())
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{72000, "20:00:00"},
		{82800, "23:00:00"},
		{86399, "23:59:59"},
		{86400, "00:00:00"},
		{104400, "05:00:00"},
		{2*86400 + 60, "00:01:00"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.seconds); got != tc.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
