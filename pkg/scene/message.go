package scene

import "fmt"

// Message identifies the timed text shown over the scene.
//
// Messages are one-shot: each fires on the single tick whose elapsed time
// equals its configured trigger instant, then persists until a later trigger
// overwrites it. A message is never cleared spontaneously.
type Message int

const (
	// MessageNone means no message has triggered yet.
	MessageNone Message = iota
	// MessageNiceNight is the early-evening greeting.
	MessageNiceNight
	// MessageLookSnowing announces the snowfall.
	MessageLookSnowing
	// MessageGoodMorning closes out the night.
	MessageGoodMorning
)

// String returns a human-readable name for the message.
func (m Message) String() string {
	switch m {
	case MessageNone:
		return "none"
	case MessageNiceNight:
		return "nicenight"
	case MessageLookSnowing:
		return "looksnowing"
	case MessageGoodMorning:
		return "goodmorning"
	default:
		return fmt.Sprintf("Message(%d)", int(m))
	}
}

// Text returns the display text for the message, empty for MessageNone.
func (m Message) Text() string {
	switch m {
	case MessageNiceNight:
		return "What a nice night!"
	case MessageLookSnowing:
		return "Look! It's snowing!!!"
	case MessageGoodMorning:
		return "Good morning!"
	default:
		return ""
	}
}
