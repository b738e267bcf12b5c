package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spincube/internal/rotation"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws optional overlays (FPS, cube angles). All overlays are off by default.
type Debug struct {
	ShowFPS     bool
	ShowAngles  bool
	frameCount  uint32
	lastFpsText string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders enabled overlays at the top-right corner. Call after the 3D pass.
// yaw and pitch are shown wrapped into [0, 360).
func (d *Debug) Draw(yaw, pitch float32) {
	if !d.ShowFPS && !d.ShowAngles {
		return
	}
	d.frameCount++
	update := d.frameCount%updateInterval == 0

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update || d.lastFpsText == "" {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}
	if d.ShowAngles {
		drawRight(AngleText(yaw, pitch), screenW, y)
	}
}

// AngleText formats yaw and pitch for display.
func AngleText(yaw, pitch float32) string {
	return fmt.Sprintf("Yaw: %5.1f  Pitch: %5.1f", rotation.Wrap(yaw), rotation.Wrap(pitch))
}

func drawRight(text string, screenW, y int32) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}
