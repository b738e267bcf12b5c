// Package app wires configuration, logging, the window, the scene and the frame
// loop together for both cube programs.
package app

import (
	"fmt"

	"spincube/internal/debug"
	"spincube/internal/engineconfig"
	"spincube/internal/env"
	"spincube/internal/frame"
	"spincube/internal/graphics"
	"spincube/internal/input"
	"spincube/internal/logger"
	"spincube/internal/platform"
	"spincube/internal/rotation"
	"spincube/internal/scene"
)

// Variant is one of the cube programs.
type Variant struct {
	Name  string
	Title string
	// NewSource returns the rotation source, given the clock reading at loop start.
	NewSource func(now float64) rotation.Source
}

var (
	// Clock turns the cube by elapsed time, yaw then pitch.
	Clock = Variant{
		Name:      "clock",
		Title:     "Voxel-style cube",
		NewSource: func(now float64) rotation.Source { return rotation.NewClock(now) },
	}
	// Drag turns the cube with the left mouse button, pitch then yaw.
	Drag = Variant{
		Name:      "drag",
		Title:     "Voxel-style cube (drag)",
		NewSource: func(float64) rotation.Source { return rotation.NewDrag() },
	}
)

// Run opens the window and drives the frame loop until the user closes it.
// It returns the process exit code.
func Run(v Variant) int {
	envErr := env.Load(".env")
	defaults := engineconfig.Default()
	defaults.Title = v.Title
	prefs, cfgErr := engineconfig.LoadWithDefaults(env.ConfigPath(engineconfig.DefaultPath), defaults)
	log := logger.New(prefs.LogPath)
	if envErr != nil {
		log.Error("env: " + envErr.Error())
	}
	if cfgErr != nil {
		log.Error("config: " + cfgErr.Error() + " (using defaults)")
	}

	win, err := graphics.Open(prefs, log)
	if err != nil {
		log.Error(err.Error())
		return platform.ExitCode(err)
	}
	defer win.Close()

	overlay := debug.New()
	overlay.ShowFPS = prefs.ShowFPS
	overlay.ShowAngles = prefs.ShowAngles
	scn := scene.New(overlay)
	defer scn.Unload()

	src := v.NewSource(win.Now())
	loop := frame.New(win, scn, src)
	loop.OnClose = func(ev input.Event) {
		log.Log("closing on " + ev.Kind.String())
	}
	log.Log(fmt.Sprintf("%s cube running, rotation %s", v.Name, src.Order()))
	frames := loop.Run()
	log.Log(fmt.Sprintf("rendered %d frames", frames))
	return platform.ExitCode(nil)
}
