package sim

// Command is a steering command consumed by the vehicle controller.
// Commands arrive from an external source (classifier, keyboard, script)
// at its own cadence; the simulation applies the last received command
// every tick until a new one arrives.
type Command string

const (
	CommandBrake      Command = "BRAKE"
	CommandSwipeLeft  Command = "SWIPE_LEFT"
	CommandSwipeRight Command = "SWIPE_RIGHT"
	CommandCenter     Command = "CENTER"

	// CommandNoAction is emitted by some producers as a synonym for CENTER.
	CommandNoAction Command = "NO_ACTION"

	// commandNone is the last-command sentinel before any command arrives,
	// so the very first real command always registers as a rising edge.
	commandNone Command = "NONE"
)

// ParseCommand coerces an arbitrary command string into the vocabulary.
// NO_ACTION is treated as CENTER; anything unrecognized also becomes
// CENTER rather than an error, so a misbehaving source can never stall
// the vehicle.
func ParseCommand(s string) Command {
	switch Command(s) {
	case CommandBrake:
		return CommandBrake
	case CommandSwipeLeft:
		return CommandSwipeLeft
	case CommandSwipeRight:
		return CommandSwipeRight
	default:
		return CommandCenter
	}
}
