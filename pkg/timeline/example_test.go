package timeline_test

import (
	"fmt"

	"github.com/go-nocturne/nocturne/pkg/timeline"
)

// This example advances a night clock the way the frame loop does.
func ExampleClock() {
	clock, _ := timeline.NewClock(timeline.ClockConfig{
		OffsetSeconds:   72000, // 20:00
		VirtualDuration: 36000,
		FrameCount:      60, // ten virtual minutes per tick
	})

	fmt.Println(clock)
	clock.Advance()
	fmt.Println(clock)
	// Output:
	// 20:00:00
	// 20:10:00
}

// This example shows the display wrapping while elapsed time keeps
// counting past midnight.
func ExampleFormatClock() {
	fmt.Println(timeline.FormatClock(86400 + 3600))
	// Output:
	// 01:00:00
}
