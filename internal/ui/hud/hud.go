// Package hud draws the diagnostic overlay: frame rate and player pose.
package hud

import (
	"fmt"

	"chosenoffset.com/corridor9/internal/core/player"
	"chosenoffset.com/corridor9/internal/render"
)

// HUD renders the overlay onto a frame. A nil or hidden HUD draws nothing.
type HUD struct {
	visible bool
}

// New creates a HUD. Pass false to keep it hidden.
func New(visible bool) *HUD {
	return &HUD{visible: visible}
}

// Draw writes the frame rate and player pose in the top-left corner. The
// frame decides how (or whether) the text appears.
func (h *HUD) Draw(frame render.Frame, fps float64, p player.State) {
	if h == nil || !h.visible {
		return
	}
	frame.DrawText(fmt.Sprintf("FPS: %.1f", fps), 8, 8)
	frame.DrawText(fmt.Sprintf("pos (%.2f, %.2f) angle %.2f", p.X, p.Y, p.Angle), 8, 24)
}
