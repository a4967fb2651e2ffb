package matrix

import (
	"fmt"

	"github.com/ushitora-anqou/slotassets/asset"
	"github.com/ushitora-anqou/slotassets/bus"
	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/ushitora-anqou/slotassets/util"
)

// Pixel values emitted in a scanline
const (
	PIXEL_GAP uint8 = 0
	PIXEL_OFF uint8 = 1
	PIXEL_ON  uint8 = 2
)

// Matrix drives the reel LED matrices. The rows are multiplexed: every
// ROW_TICKS one row of all reels is pushed to the display.
type Matrix struct {
	bus         *bus.Bus
	glyphRAM    [constant.GLYPH_COUNT]asset.Glyph
	glyphLoaded bool
	reels       [constant.REEL_COUNT]asset.GlyphSlot
	ly          int
	tick        uint
}

func NewMatrix(bus *bus.Bus) *Matrix {
	return &Matrix{bus: bus}
}

// LoadGlyphs fills glyph memory. It is done once at start up.
func (m *Matrix) LoadGlyphs(glyphs [constant.GLYPH_COUNT]asset.Glyph) {
	m.glyphRAM = glyphs
	m.glyphLoaded = true
	util.Trace("matrix: loaded %d glyphs", len(glyphs))
}

func (m *Matrix) SetReel(reel int, slot asset.GlyphSlot) error {
	if reel < 0 || reel >= constant.REEL_COUNT {
		return fmt.Errorf("Invalid reel: %d", reel)
	}
	if slot < 0 || int(slot) >= constant.GLYPH_COUNT {
		return fmt.Errorf("Invalid glyph slot for reel %d: %w", reel, &asset.InvalidKeyError{Table: "glyph", Key: int(slot)})
	}
	m.reels[reel] = slot
	return nil
}

func (m *Matrix) Reel(reel int) (asset.GlyphSlot, error) {
	if reel < 0 || reel >= constant.REEL_COUNT {
		return 0, fmt.Errorf("Invalid reel: %d", reel)
	}
	return m.reels[reel], nil
}

func (m *Matrix) LY() int {
	return m.ly
}

// Scanline renders row ly of every reel.
func (m *Matrix) Scanline(ly int) ([constant.MATRIX_WIDTH]uint8, error) {
	scanline := [constant.MATRIX_WIDTH]uint8{}
	if ly < 0 || ly >= constant.MATRIX_HEIGHT {
		return scanline, fmt.Errorf("Invalid scanline: %d", ly)
	}
	for x := range scanline {
		reel := x / (constant.GLYPH_WIDTH + constant.REEL_GAP)
		pix_x := x % (constant.GLYPH_WIDTH + constant.REEL_GAP)
		if pix_x >= constant.GLYPH_WIDTH {
			scanline[x] = PIXEL_GAP
			continue
		}
		if !m.glyphLoaded {
			scanline[x] = PIXEL_OFF
			continue
		}
		row := m.glyphRAM[m.reels[reel]][ly]
		// PIXEL_ON follows PIXEL_OFF
		scanline[x] = PIXEL_OFF + util.BoolToU8((row>>(7-pix_x))&1 != 0)
	}
	return scanline, nil
}

func (m *Matrix) drawLine() error {
	scanline, err := m.Scanline(m.ly)
	if err != nil {
		return err
	}
	return m.bus.Display.DrawLine(m.ly, scanline[:])
}

func (m *Matrix) Update(elapsedTick uint) error {
	m.tick += elapsedTick
	for m.tick >= constant.ROW_TICKS {
		m.tick -= constant.ROW_TICKS
		if err := m.drawLine(); err != nil {
			return err
		}
		m.ly = (m.ly + 1) % constant.MATRIX_HEIGHT
	}
	return nil
}
