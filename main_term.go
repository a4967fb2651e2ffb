//go:build !sdl2 && !ebiten

package main

import (
	"github.com/ushitora-anqou/slotassets/config"
	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/ushitora-anqou/slotassets/window"
)

func runFrontEnd(cfg *config.Config) error {
	wind, closeTerm, err := window.OpenTerm()
	if err != nil {
		return err
	}
	defer closeTerm()

	viewer, err := NewViewer(wind, cfg.Volume)
	if err != nil {
		return err
	}

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
