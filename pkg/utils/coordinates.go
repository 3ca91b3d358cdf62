// Package utils holds small helpers shared by the simulation and the
// presentation layer: randomness, number formatting and screen-space
// conversion.
package utils

// Coordinate systems:
//   - world: pixels, y up, origin at the bottom-left of the level
//   - screen: pixels, y down, origin at the top-left of the visible area
//
// The camera only scrolls horizontally; cameraX is the world x of the left
// screen edge.

// WorldToScreen converts a world point to screen space.
func WorldToScreen(worldX, worldY, cameraX, screenHeight float64) (float64, float64) {
	return worldX - cameraX, screenHeight - worldY
}

// CameraFollow returns the camera x that centers targetX on a screen of
// screenWidth, clamped so the view never leaves [0, levelWidth].
func CameraFollow(targetX, screenWidth, levelWidth float64) float64 {
	cameraX := targetX - screenWidth/2
	maxX := levelWidth - screenWidth
	if cameraX > maxX {
		cameraX = maxX
	}
	if cameraX < 0 {
		cameraX = 0
	}
	return cameraX
}
