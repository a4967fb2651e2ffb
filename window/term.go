package window

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"

	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/ushitora-anqou/slotassets/util"
)

var termKeys = map[rune]WindowEvent{
	'd': {Direction: 1 << constant.DIR_RIGHT},
	'a': {Direction: 1 << constant.DIR_LEFT},
	'w': {Direction: 1 << constant.DIR_UP},
	's': {Direction: 1 << constant.DIR_DOWN},
	'k': {Action: 1 << constant.ACT_A},
	'j': {Action: 1 << constant.ACT_B},
}

// TermWindow draws the matrix and the LCD with ANSI escapes. A terminal has
// no key release, so a key counts as held for the frame it arrives in.
type TermWindow struct {
	out           io.Writer
	keys          <-chan rune
	screen        screen
	lines         []string
	cursor        int
	droppedFrames int
}

func NewTermWindow(out io.Writer, keys <-chan rune) *TermWindow {
	return &TermWindow{out: out, keys: keys}
}

// OpenTerm attaches a TermWindow to the controlling terminal.
func OpenTerm() (*TermWindow, func() error, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, nil, err
	}
	keys := make(chan rune, 16)
	go func() {
		defer close(keys)
		for {
			r, err := t.ReadRune()
			if err != nil {
				util.Trace("term: %v", err)
				return
			}
			keys <- r
		}
	}()
	return NewTermWindow(colorable.NewColorableStdout(), keys), t.Close, nil
}

func (wind *TermWindow) DrawLine(ly int, scanline []uint8) error {
	return wind.screen.drawLine(ly, scanline)
}

// EnqueueAudioBuffer drops the audio; a terminal cannot play it.
func (wind *TermWindow) EnqueueAudioBuffer(buf []float32) error {
	if err := checkAudioBuffer(buf); err != nil {
		return err
	}
	wind.droppedFrames++
	return nil
}

func (wind *TermWindow) ShowText(lines []string, cursor int) error {
	wind.lines = append(wind.lines[:0], lines...)
	wind.cursor = cursor
	return nil
}

// HandleEvents drains pending keys. It reports true when the user quits.
func (wind *TermWindow) HandleEvents() (bool, *WindowEvent) {
	we := &WindowEvent{}
	for {
		select {
		case r, ok := <-wind.keys:
			if !ok || r == 'q' {
				return true, we
			}
			if key, found := termKeys[r]; found {
				we.press(key, true)
			}
		default:
			return false, we
		}
	}
}

func (wind *TermWindow) UpdateScreen() error {
	w := bufio.NewWriter(wind.out)
	fmt.Fprint(w, "\x1b[H\x1b[2J")
	for row := 0; row < constant.MATRIX_HEIGHT; row++ {
		for col := 0; col < constant.MATRIX_WIDTH; col++ {
			c := wind.screen.color(row, col)
			fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm██", c[0], c[1], c[2])
		}
		fmt.Fprint(w, "\x1b[0m\r\n")
	}
	fmt.Fprint(w, "\r\n")
	for i, line := range wind.lines {
		marker := "  "
		if i == wind.cursor {
			marker = "> "
		}
		fmt.Fprintf(w, "%s|%s|\r\n", marker, line)
	}
	fmt.Fprint(w, "\r\nwasd: move  k: note  j: jingle  q: quit\r\n")
	fmt.Fprintf(w, "audio frames dropped: %d\r\n", wind.droppedFrames)
	return w.Flush()
}
