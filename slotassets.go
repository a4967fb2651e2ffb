package main

import (
	"time"

	"github.com/ushitora-anqou/slotassets/asset"
	"github.com/ushitora-anqou/slotassets/bus"
	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/ushitora-anqou/slotassets/keypad"
	"github.com/ushitora-anqou/slotassets/lcd"
	"github.com/ushitora-anqou/slotassets/matrix"
	"github.com/ushitora-anqou/slotassets/melody"
	"github.com/ushitora-anqou/slotassets/tone"
	"github.com/ushitora-anqou/slotassets/window"
)

const noteLength = 300 * time.Millisecond

// Viewer shows the asset tables on the reel matrices, the LCD and the
// speaker.
type Viewer struct {
	bus    *bus.Bus
	matrix *matrix.Matrix
	lcd    *lcd.LCD
	tone   *tone.Tone
	player *melody.Player
	keypad *keypad.Keypad
	wind   window.Window
	cnt    int

	// Staging buffer for LCD rows. Only refreshText writes to it.
	buf asset.Buffer

	glyph asset.GlyphSlot
	menu  asset.Menu
	note  asset.Note
}

func NewViewer(wind window.Window, volume float32) (*Viewer, error) {
	// Build the components
	bus := bus.NewBus()
	matrix := matrix.NewMatrix(bus)
	tone := tone.NewTone(volume)
	player := melody.NewPlayer(tone)

	// Build up the bus
	bus.Register(wind, wind, wind)

	v := &Viewer{
		bus:    bus,
		matrix: matrix,
		lcd:    lcd.NewLCD(),
		tone:   tone,
		player: player,
		keypad: keypad.NewKeypad(),
		wind:   wind,
		note:   asset.NOTE_C4,
	}

	matrix.LoadGlyphs(asset.Glyphs())
	if err := v.refreshReels(); err != nil {
		return nil, err
	}
	if err := v.refreshText(); err != nil {
		return nil, err
	}
	return v, nil
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (v *Viewer) refreshReels() error {
	for reel := 0; reel < constant.REEL_COUNT; reel++ {
		slot := asset.GlyphSlot(wrap(int(v.glyph)+reel-constant.REEL_COUNT/2, constant.GLYPH_COUNT))
		if err := v.matrix.SetReel(reel, slot); err != nil {
			return err
		}
	}
	return nil
}

func (v *Viewer) refreshText() error {
	top := int(v.menu)
	if top > constant.MENU_COUNT-constant.LCD_ROWS {
		top = constant.MENU_COUNT - constant.LCD_ROWS
	}
	for row := 0; row < constant.LCD_ROWS; row++ {
		if err := asset.CopyMenuLabel(&v.buf, asset.Menu(top+row)); err != nil {
			return err
		}
		if err := v.lcd.Print(row, &v.buf); err != nil {
			return err
		}
	}
	if err := v.lcd.SetCursor(int(v.menu) - top); err != nil {
		return err
	}
	return v.bus.Text.ShowText(v.lcd.Lines(), v.lcd.Cursor())
}

func (v *Viewer) handleKeys(event *window.WindowEvent) error {
	k := v.keypad
	k.Latch(event.Direction, event.Action)

	switch {
	case k.Pressed(keypad.RIGHT):
		v.glyph = asset.GlyphSlot(wrap(int(v.glyph)+1, constant.GLYPH_COUNT))
	case k.Pressed(keypad.LEFT):
		v.glyph = asset.GlyphSlot(wrap(int(v.glyph)-1, constant.GLYPH_COUNT))
	}
	if err := v.refreshReels(); err != nil {
		return err
	}

	menu := v.menu
	switch {
	case k.Pressed(keypad.DOWN):
		menu = asset.Menu(wrap(int(v.menu)+1, constant.MENU_COUNT))
	case k.Pressed(keypad.UP):
		menu = asset.Menu(wrap(int(v.menu)-1, constant.MENU_COUNT))
	}
	if menu != v.menu {
		v.menu = menu
		if err := v.refreshText(); err != nil {
			return err
		}
	}

	switch {
	case k.Pressed(keypad.A):
		// Walk up the note table, one note per press
		if err := v.player.Play([]melody.Step{{Note: v.note, Duration: noteLength}}); err != nil {
			return err
		}
		v.note = asset.Note(wrap(int(v.note)+1, constant.NOTE_COUNT))
	case k.Pressed(keypad.B):
		if err := v.player.Play(melody.FIVE_TONE); err != nil {
			return err
		}
	}
	return nil
}

// Update handles one frame of input and runs FRAME_TICKS clock ticks.
func (v *Viewer) Update(event *window.WindowEvent) error {
	if err := v.handleKeys(event); err != nil {
		return err
	}

	for v.cnt < constant.FRAME_TICKS {
		if err := v.matrix.Update(1); err != nil {
			return err
		}
		if err := v.player.Update(1); err != nil {
			return err
		}
		if v.tone.Update(1) {
			if err := v.bus.Speaker.EnqueueAudioBuffer(v.tone.GetAudioBuffer()); err != nil {
				return err
			}
		}
		v.cnt++
	}
	v.cnt -= constant.FRAME_TICKS

	return nil
}
