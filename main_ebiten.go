//go:build ebiten && !sdl2

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ushitora-anqou/slotassets/config"
	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/ushitora-anqou/slotassets/window"
)

var errQuit = errors.New("quit")

type Game struct {
	viewer *Viewer
	wind   *window.EbitenWindow
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constant.MATRIX_WIDTH, constant.MATRIX_HEIGHT
}

func (g *Game) Update() error {
	escape, event := g.wind.HandleEvents()
	if escape {
		return errQuit
	}
	return g.viewer.Update(event)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.ReplacePixels(g.wind.Render())
}

func runFrontEnd(cfg *config.Config) error {
	if err := window.EbitenInitialize(cfg.Scale); err != nil {
		return err
	}

	wind, err := window.NewEbitenWindow()
	if err != nil {
		return err
	}

	viewer, err := NewViewer(wind, cfg.Volume)
	if err != nil {
		return err
	}

	err = ebiten.RunGame(&Game{viewer, wind})
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
