package config

// Screen layout. The game renders to a fixed logical screen that the window
// scales up.
const (
	// ScreenWidth is the logical screen width in pixels.
	ScreenWidth = 400
	// ScreenHeight is the logical screen height in pixels.
	ScreenHeight = 208
	// WindowScale is the initial window-to-screen ratio.
	WindowScale = 2

	GameWindowWidth  = ScreenWidth * WindowScale
	GameWindowHeight = ScreenHeight * WindowScale
)
