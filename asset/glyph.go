package asset

import (
	"strings"

	"github.com/ushitora-anqou/slotassets/constant"
)

// Glyph is an 8x8 monochrome sprite. Row 0 is the top row and bit 7 of each
// row is the leftmost pixel.
type Glyph [constant.GLYPH_ROWS]uint8

type GlyphSlot int

// The slot order matches the custom character slots of the display driver.
const (
	GLYPH_STAR GlyphSlot = iota
	GLYPH_DICE_1
	GLYPH_BARS_3
	GLYPH_HEART
	GLYPH_DICE_2
	GLYPH_SEVEN
	GLYPH_DOLLAR
	GLYPH_DICE_3
	GLYPH_HASH
	GLYPH_BARS_1
	GLYPH_DICE_4
	GLYPH_INVERSE_SEVEN
	GLYPH_NINE_SPOTS
	GLYPH_DICE_5
	GLYPH_BARS_2
	GLYPH_ALIEN_0
	GLYPH_SMILE
	GLYPH_DICE_6
	GLYPH_SPACESHIP
	GLYPH_ALIEN_1
	GLYPH_ALIEN_2
	GLYPH_ALIEN_3
	GLYPH_ONE
	GLYPH_TWO
	GLYPH_THREE
)

var glyphNames = [constant.GLYPH_COUNT]string{
	"GLYPH_STAR",
	"GLYPH_DICE_1",
	"GLYPH_BARS_3",
	"GLYPH_HEART",
	"GLYPH_DICE_2",
	"GLYPH_SEVEN",
	"GLYPH_DOLLAR",
	"GLYPH_DICE_3",
	"GLYPH_HASH",
	"GLYPH_BARS_1",
	"GLYPH_DICE_4",
	"GLYPH_INVERSE_SEVEN",
	"GLYPH_NINE_SPOTS",
	"GLYPH_DICE_5",
	"GLYPH_BARS_2",
	"GLYPH_ALIEN_0",
	"GLYPH_SMILE",
	"GLYPH_DICE_6",
	"GLYPH_SPACESHIP",
	"GLYPH_ALIEN_1",
	"GLYPH_ALIEN_2",
	"GLYPH_ALIEN_3",
	"GLYPH_ONE",
	"GLYPH_TWO",
	"GLYPH_THREE",
}

var glyphs = [constant.GLYPH_COUNT]Glyph{
	{ // star
		0b10011001,
		0b01011010,
		0b00111100,
		0b11111111,
		0b11111111,
		0b00111100,
		0b01011010,
		0b10011001,
	},
	{ // one spot on dice
		0b00000000,
		0b00000000,
		0b00000000,
		0b00011000,
		0b00011000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // three bars
		0b11111111,
		0b11111111,
		0b00000000,
		0b11111111,
		0b11111111,
		0b00000000,
		0b11111111,
		0b11111111,
	},
	{ // heart
		0b01100110,
		0b11111111,
		0b11111111,
		0b11111111,
		0b11111111,
		0b01111110,
		0b00111100,
		0b00011000,
	},
	{ // two spots on dice
		0b00000000,
		0b01100000,
		0b01100000,
		0b00000000,
		0b00000000,
		0b00000110,
		0b00000110,
		0b00000000,
	},
	{ // seven
		0b00000000,
		0b01111110,
		0b01111110,
		0b00001100,
		0b00011000,
		0b00111000,
		0b00111000,
		0b00000000,
	},
	{ // dollar sign
		0b00011000,
		0b00111100,
		0b01011010,
		0b00111000,
		0b00011100,
		0b01011010,
		0b00111100,
		0b00011000,
	},
	{ // three spots on dice
		0b00000000,
		0b01100000,
		0b01100000,
		0b00011000,
		0b00011000,
		0b00000110,
		0b00000110,
		0b00000000,
	},
	{ // hash, inverse of nine spots
		0b00100100,
		0b00100100,
		0b11111111,
		0b00100100,
		0b00100100,
		0b11111111,
		0b00100100,
		0b00100100,
	},
	{ // one bar
		0b00000000,
		0b00000000,
		0b00000000,
		0b11111111,
		0b11111111,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // four spots on dice
		0b00000000,
		0b01100110,
		0b01100110,
		0b00000000,
		0b00000000,
		0b01100110,
		0b01100110,
		0b00000000,
	},
	{ // inverse seven
		0b11111111,
		0b10000001,
		0b10000001,
		0b11110011,
		0b11100111,
		0b11000111,
		0b11000111,
		0b11111111,
	},
	{ // nine spots
		0b11011011,
		0b11011011,
		0b00000000,
		0b11011011,
		0b11011011,
		0b00000000,
		0b11011011,
		0b11011011,
	},
	{ // five spots on dice
		0b00000000,
		0b01100110,
		0b01100110,
		0b00011000,
		0b00011000,
		0b01100110,
		0b01100110,
		0b00000000,
	},
	{ // two bars
		0b00000000,
		0b11111111,
		0b11111111,
		0b00000000,
		0b00000000,
		0b11111111,
		0b11111111,
		0b00000000,
	},
	{ // alien 0
		0b01000010,
		0b00100100,
		0b01111110,
		0b11011011,
		0b11111111,
		0b11111111,
		0b10100101,
		0b00100100,
	},
	{ // smile
		0b00000000,
		0b00100100,
		0b00000000,
		0b00011000,
		0b01000010,
		0b01000010,
		0b00111100,
		0b00011000,
	},
	{ // six spots on dice
		0b00000000,
		0b11011011,
		0b11011011,
		0b00000000,
		0b00000000,
		0b11011011,
		0b11011011,
		0b00000000,
	},
	{ // space ship
		0b00000000,
		0b00000000,
		0b00111100,
		0b01111110,
		0b10101011,
		0b01111110,
		0b00111100,
		0b00000000,
	},
	{ // alien 1
		0b00011000,
		0b00111100,
		0b01111110,
		0b11011011,
		0b11111111,
		0b00100100,
		0b01011010,
		0b10100101,
	},
	{ // alien 2
		0b00011000,
		0b00111100,
		0b01111110,
		0b11011011,
		0b11111111,
		0b00100100,
		0b01011010,
		0b01000010,
	},
	{ // alien 3
		0b00000000,
		0b10000001,
		0b11111111,
		0b11011011,
		0b11111111,
		0b01111110,
		0b00100100,
		0b01000010,
	},
	{ // digit one
		0b00010000,
		0b00110000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00111000,
	},
	{ // digit two
		0b00111000,
		0b01000100,
		0b10000010,
		0b00000100,
		0b00001000,
		0b00010000,
		0b00100000,
		0b11111110,
	},
	{ // digit three
		0b11111111,
		0b00000010,
		0b00000100,
		0b00011100,
		0b00000010,
		0b00000100,
		0b00001000,
		0b11100000,
	},
}

func (s GlyphSlot) valid() bool {
	return 0 <= s && int(s) < constant.GLYPH_COUNT
}

func (s GlyphSlot) String() string {
	if !s.valid() {
		return "GLYPH_INVALID"
	}
	return glyphNames[s]
}

// GlyphBitmap returns the pattern stored in slot s.
func GlyphBitmap(s GlyphSlot) (Glyph, error) {
	if !s.valid() {
		return Glyph{}, invalidKey("glyph", int(s))
	}
	return glyphs[s], nil
}

// Glyphs returns every glyph in slot order.
func Glyphs() [constant.GLYPH_COUNT]Glyph {
	return glyphs
}

// Pixel reports whether the pixel at column x, row y is lit. Coordinates
// outside the glyph are never lit.
func (g Glyph) Pixel(x, y int) bool {
	if x < 0 || x >= constant.GLYPH_WIDTH || y < 0 || y >= constant.GLYPH_ROWS {
		return false
	}
	return (g[y]>>(7-x))&1 != 0
}

// Rows renders the glyph as one string per row, '#' for a lit pixel.
func (g Glyph) Rows() []string {
	rows := make([]string, constant.GLYPH_ROWS)
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < constant.GLYPH_WIDTH; x++ {
			if g.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func (g Glyph) String() string {
	return strings.Join(g.Rows(), "\n")
}
