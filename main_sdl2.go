//go:build sdl2

package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/slotassets/config"
	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/ushitora-anqou/slotassets/window"
)

func runFrontEnd(cfg *config.Config) error {
	// Initialize SDL
	if err := window.SDLInitialize(); err != nil {
		return err
	}
	defer sdl.Quit()

	// Create a window
	wind, err := window.NewSDLWindow(cfg.Scale)
	if err != nil {
		return err
	}
	defer wind.Destroy()

	viewer, err := NewViewer(wind, cfg.Volume)
	if err != nil {
		return err
	}

	// Main loop
	synchronizer := window.NewTimeSynchronizer(constant.TARGET_FPS)
	for {
		escape, event := wind.HandleEvents()
		if escape {
			return nil
		}
		if err := viewer.Update(event); err != nil {
			return err
		}
		if err := wind.UpdateScreen(); err != nil {
			return err
		}
		synchronizer.MaySleep()
	}
}
