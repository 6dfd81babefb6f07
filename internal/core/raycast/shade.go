package raycast

// ShadeConfig holds the distance-shading constants a level defines.
type ShadeConfig struct {
	MaxDepth float64
	FogStart float64
	// SideContrast darkens walls hit across a horizontal grid line so the
	// two face orientations read differently. Cosmetic.
	SideContrast bool
}

// sideContrastFactor is applied to SideY faces when SideContrast is on.
const sideContrastFactor = 0.7

// Shade maps a wall distance to a 0-255 intensity, falling off linearly to
// zero at maxDepth.
func Shade(distance, maxDepth float64) uint8 {
	s := 255 * (1 - distance/maxDepth)
	if s < 0 {
		s = 0
	}
	if s > 255 {
		s = 255
	}
	return uint8(s)
}

// FogFactor is the fog blend for a distance: 0 before fogStart, ramping
// linearly to 1 at maxDepth.
func FogFactor(distance, fogStart, maxDepth float64) float64 {
	if distance <= fogStart {
		return 0
	}
	f := (distance - fogStart) / (maxDepth - fogStart)
	if f > 1 {
		f = 1
	}
	return f
}

// WallShade combines distance shade, fog, and the optional side contrast
// into the final gray intensity for a column's wall band.
func WallShade(hit RayHit, cfg ShadeConfig) uint8 {
	s := float64(Shade(hit.Distance, cfg.MaxDepth))
	s *= 1 - FogFactor(hit.Distance, cfg.FogStart, cfg.MaxDepth)
	if cfg.SideContrast && hit.Side == SideY {
		s *= sideContrastFactor
	}
	return uint8(s)
}
