package window

import (
	"fmt"
	"strings"

	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/ushitora-anqou/slotassets/matrix"
)

type WindowEvent struct {
	Direction, Action uint8
}

// press sets or clears the buttons of key.
func (we *WindowEvent) press(key WindowEvent, down bool) {
	if down {
		we.Direction |= key.Direction
		we.Action |= key.Action
	} else {
		we.Direction &^= key.Direction
		we.Action &^= key.Action
	}
}

type Window interface {
	DrawLine(ly int, scanline []uint8) error
	EnqueueAudioBuffer(buf []float32) error
	ShowText(lines []string, cursor int) error
}

// RGB colours of the matrix pixel values
var palette = [3][3]uint8{
	matrix.PIXEL_GAP: {0x10, 0x10, 0x10},
	matrix.PIXEL_OFF: {0x40, 0x08, 0x08},
	matrix.PIXEL_ON:  {0xff, 0x20, 0x20},
}

// screen keeps the last scanline received for every matrix row.
type screen [constant.MATRIX_WIDTH * constant.MATRIX_HEIGHT]uint8

func (s *screen) drawLine(ly int, scanline []uint8) error {
	if len(scanline) != constant.MATRIX_WIDTH {
		return fmt.Errorf(
			"Invalid length of scanline data: expected %d, got %d",
			constant.MATRIX_WIDTH,
			len(scanline),
		)
	}
	if ly < 0 || ly >= constant.MATRIX_HEIGHT {
		return fmt.Errorf("Invalid scanline: %d", ly)
	}
	copy(s[ly*constant.MATRIX_WIDTH:(ly+1)*constant.MATRIX_WIDTH], scanline)
	return nil
}

func (s *screen) color(row, col int) [3]uint8 {
	return palette[s[row*constant.MATRIX_WIDTH+col]]
}

func checkAudioBuffer(buf []float32) error {
	if length := constant.AUDIO_SAMPLES * constant.CHANNELS; len(buf) != length {
		return fmt.Errorf("Invalid length of audio buffer: expected %d, got %d", length, len(buf))
	}
	return nil
}

// title shows the selected LCD row next to the program name.
func title(lines []string, cursor int) string {
	if cursor < 0 || cursor >= len(lines) {
		return constant.WINDOW_TITLE
	}
	return constant.WINDOW_TITLE + " - " + strings.TrimRight(lines[cursor], " ")
}
