package app

// CommandKind identifies the UI action a background listener requests.
type CommandKind int

const (
	CommandUndefined CommandKind = iota
	CommandShowOverlay
	CommandHideOverlay
	CommandToggleOverlay
	CommandCheckClickOutside
	CommandQuit
)

func (k CommandKind) String() string {
	switch k {
	case CommandShowOverlay:
		return "show overlay"
	case CommandHideOverlay:
		return "hide overlay"
	case CommandToggleOverlay:
		return "toggle overlay"
	case CommandCheckClickOutside:
		return "check click outside"
	case CommandQuit:
		return "quit"
	}
	return "undefined"
}

// Command is a message placed on the bridge queue by a background
// goroutine and consumed exactly once by the UI thread.
// X and Y carry physical screen coordinates for click commands.
type Command struct {
	Kind CommandKind
	X    int
	Y    int
}
