package raycast

// minProjectionDistance guards the screenHeight/distance division. A ray
// that starts on a wall boundary can report a distance of zero; clamping
// keeps the projected band finite instead of blowing up the column.
const minProjectionDistance = 1e-4

// Project converts a wall distance to the screen-space ceiling and floor
// boundaries of the wall band for a screen of the given height. The ceiling
// may come out negative (and the floor past the bottom) for very close
// walls; frames clamp to their own bounds when drawing.
func Project(distance float64, screenHeight int) (ceilingY, floorY int) {
	if distance < minProjectionDistance {
		distance = minProjectionDistance
	}
	h := float64(screenHeight)
	ceilingY = int(h/2 - h/distance)
	floorY = screenHeight - ceilingY
	return ceilingY, floorY
}
