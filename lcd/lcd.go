// Package lcd models the character LCD the menu labels are shown on.
package lcd

import (
	"fmt"
	"strings"

	"github.com/ushitora-anqou/slotassets/asset"
	"github.com/ushitora-anqou/slotassets/constant"
)

type LCD struct {
	rows   [constant.LCD_ROWS][constant.LCD_COLS]byte
	cursor int
}

func NewLCD() *LCD {
	lcd := &LCD{}
	lcd.Clear()
	return lcd
}

func (lcd *LCD) Clear() {
	for i := range lcd.rows {
		for j := range lcd.rows[i] {
			lcd.rows[i][j] = ' '
		}
	}
}

// Print writes a staged buffer over a whole row.
func (lcd *LCD) Print(row int, buf *asset.Buffer) error {
	if row < 0 || row >= constant.LCD_ROWS {
		return fmt.Errorf("Invalid LCD row: %d", row)
	}
	copy(lcd.rows[row][:], buf[:])
	return nil
}

func (lcd *LCD) SetCursor(row int) error {
	if row < 0 || row >= constant.LCD_ROWS {
		return fmt.Errorf("Invalid LCD row: %d", row)
	}
	lcd.cursor = row
	return nil
}

func (lcd *LCD) Cursor() int {
	return lcd.cursor
}

func (lcd *LCD) Lines() []string {
	lines := make([]string, constant.LCD_ROWS)
	for i := range lcd.rows {
		lines[i] = string(lcd.rows[i][:])
	}
	return lines
}

func (lcd *LCD) String() string {
	return strings.Join(lcd.Lines(), "\n")
}
