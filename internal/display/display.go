// Package display computes DPI-aware window placement from screen
// dimensions. All functions are pure and clamp their results so the
// window stays fully on screen.
package display

// Size is a window or screen extent in pixels.
type Size struct {
	Width  int
	Height int
}

// Frame is a placed rectangle in screen coordinates.
type Frame struct {
	Width  int
	Height int
	X      int
	Y      int
}

// Corner names one of the four screen corners.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

const (
	taskbarHeight   = 40
	hotkeyBarHeight = 32
	cornerMargin    = 20
	bottomReserve   = 80
)

// sanitize treats degenerate screens as 1x1 so placement math never divides
// or clamps against zero.
func sanitize(screen Size) Size {
	if screen.Width < 1 {
		screen.Width = 1
	}
	if screen.Height < 1 {
		screen.Height = 1
	}
	return screen
}

// Scaled returns a dimension scaled for DPI, never below 1.
func Scaled(base int, scale float64) int {
	if scale <= 0 {
		scale = 1
	}
	v := int(float64(base) * scale)
	if v < 1 {
		return 1
	}
	return v
}

// Clamp moves the frame the minimal distance needed to lie entirely
// within the screen. Frames larger than the screen are shrunk to fit.
func Clamp(f Frame, screen Size) Frame {
	screen = sanitize(screen)
	if f.Width > screen.Width {
		f.Width = screen.Width
	}
	if f.Height > screen.Height {
		f.Height = screen.Height
	}
	if f.Width < 1 {
		f.Width = 1
	}
	if f.Height < 1 {
		f.Height = 1
	}
	f.X = max(0, min(f.X, screen.Width-f.Width))
	f.Y = max(0, min(f.Y, screen.Height-f.Height))
	return f
}

// QuarterScreen places the window over the right quarter of the
// screen, leaving room for a taskbar and the hotkey bar at the bottom.
func QuarterScreen(screen Size, scale float64) Frame {
	screen = sanitize(screen)
	w := screen.Width / 4
	h := screen.Height - Scaled(taskbarHeight, scale) - Scaled(hotkeyBarHeight, scale)
	f := Frame{
		Width:  w,
		Height: h,
		X:      screen.Width - w,
		Y:      0,
	}
	return Clamp(f, screen)
}

// CornerFrame places a window of the given size in one of the four
// corners with a DPI-scaled margin. The bottom corners additionally
// reserve space for a taskbar-equivalent.
func CornerFrame(c Corner, screen Size, win Size, scale float64) Frame {
	screen = sanitize(screen)
	margin := Scaled(cornerMargin, scale)
	f := Frame{Width: win.Width, Height: win.Height}
	switch c {
	case TopRight:
		f.X = screen.Width - win.Width - margin
		f.Y = margin
	case BottomLeft:
		f.X = margin
		f.Y = screen.Height - win.Height - bottomReserve
	case BottomRight:
		f.X = screen.Width - win.Width - margin
		f.Y = screen.Height - win.Height - bottomReserve
	default: // TopLeft
		f.X = margin
		f.Y = margin
	}
	return Clamp(f, screen)
}

// Center places a window of the given size at the screen center.
func Center(screen Size, win Size) Frame {
	screen = sanitize(screen)
	f := Frame{
		Width:  win.Width,
		Height: win.Height,
		X:      (screen.Width - win.Width) / 2,
		Y:      (screen.Height - win.Height) / 2,
	}
	return Clamp(f, screen)
}
