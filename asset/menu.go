package asset

import (
	"strings"

	"github.com/ushitora-anqou/slotassets/constant"
)

type Menu int

// Menu indices are referenced by name from the menu navigation code and must
// not be renumbered.
const (
	MENU_PAYED_OUT Menu = iota
	MENU_WAGERED
	MENU_PLAYS
	MENU_2_MATCH
	MENU_3_MATCH
	MENU_SHIP_1_MATCH
	MENU_SHIP_2_MATCH
	MENU_SHIP_3_MATCH
	MENU_1_ALIEN
	MENU_2_ALIEN
	MENU_3_ALIEN
	MENU_EEPROM
	MENU_CREDITS
	MENU_BACK
)

// Buffer stages one label before it is written to the display. It is owned
// by its caller; nothing in this package keeps a reference to it.
type Buffer [constant.LABEL_WIDTH]byte

func (b *Buffer) String() string {
	return string(b[:])
}

var menuNames = [constant.MENU_COUNT]string{
	"MENU_PAYED_OUT",
	"MENU_WAGERED",
	"MENU_PLAYS",
	"MENU_2_MATCH",
	"MENU_3_MATCH",
	"MENU_SHIP_1_MATCH",
	"MENU_SHIP_2_MATCH",
	"MENU_SHIP_3_MATCH",
	"MENU_1_ALIEN",
	"MENU_2_ALIEN",
	"MENU_3_ALIEN",
	"MENU_EEPROM",
	"MENU_CREDITS",
	"MENU_BACK",
}

var menuLabels = buildMenuLabels(
	"PayedOut",
	"Wagered",
	"Plays",
	"2 Match",
	"3 Match",
	"Ship 1 Match",
	"Ship 2 Match",
	"Ship 3 Match",
	"1 Alien",
	"2 Alien",
	"3 Alien",
	"EEprom",
	"Credits",
	"Back",
)

func buildMenuLabels(texts ...string) [constant.MENU_COUNT]Buffer {
	var labels [constant.MENU_COUNT]Buffer
	for i, text := range texts {
		// Pad so that a label overwrites the whole line
		copy(labels[i][:], text+strings.Repeat(" ", constant.LABEL_WIDTH-len(text)))
	}
	return labels
}

func (m Menu) valid() bool {
	return 0 <= m && int(m) < constant.MENU_COUNT
}

func (m Menu) String() string {
	if !m.valid() {
		return "MENU_INVALID"
	}
	return menuNames[m]
}

// MenuLabel returns the label for m, always LABEL_WIDTH bytes long.
func MenuLabel(m Menu) (string, error) {
	if !m.valid() {
		return "", invalidKey("menu", int(m))
	}
	return menuLabels[m].String(), nil
}

// CopyMenuLabel stages the label for m into buf. buf is left untouched on
// error.
func CopyMenuLabel(buf *Buffer, m Menu) error {
	if !m.valid() {
		return invalidKey("menu", int(m))
	}
	*buf = menuLabels[m]
	return nil
}
