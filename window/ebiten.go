//go:build ebiten

package window

import (
	"encoding/binary"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/ushitora-anqou/slotassets/constant"
)

var ebitenKeys = map[ebiten.Key]WindowEvent{
	ebiten.KeyD:          {Direction: 1 << constant.DIR_RIGHT},
	ebiten.KeyArrowRight: {Direction: 1 << constant.DIR_RIGHT},
	ebiten.KeyA:          {Direction: 1 << constant.DIR_LEFT},
	ebiten.KeyArrowLeft:  {Direction: 1 << constant.DIR_LEFT},
	ebiten.KeyW:          {Direction: 1 << constant.DIR_UP},
	ebiten.KeyArrowUp:    {Direction: 1 << constant.DIR_UP},
	ebiten.KeyS:          {Direction: 1 << constant.DIR_DOWN},
	ebiten.KeyArrowDown:  {Direction: 1 << constant.DIR_DOWN},
	ebiten.KeyK:          {Action: 1 << constant.ACT_A},
	ebiten.KeyJ:          {Action: 1 << constant.ACT_B},
}

func EbitenInitialize(scale int) error {
	ebiten.SetMaxTPS(constant.TARGET_FPS)
	ebiten.SetWindowSize(constant.MATRIX_WIDTH*scale, constant.MATRIX_HEIGHT*scale)
	ebiten.SetWindowTitle(constant.WINDOW_TITLE)

	audio.NewContext(constant.AUDIO_FREQ)

	return nil
}

type EbitenWindow struct {
	screen      screen
	audio       audioQueue
	audioPlayer *audio.Player
}

func NewEbitenWindow() (*EbitenWindow, error) {
	if constant.CHANNELS != 2 {
		return nil, fmt.Errorf("Invalid channel: ebiten supports only 2 channels.")
	}

	wind := &EbitenWindow{}
	player, err := audio.CurrentContext().NewPlayer(&ebitenAudioReader{queue: &wind.audio})
	if err != nil {
		return nil, err
	}
	player.Play()
	wind.audioPlayer = player
	return wind, nil
}

// HandleEvents reads the keyboard. It reports true when Escape is held.
func (wind *EbitenWindow) HandleEvents() (bool, *WindowEvent) {
	we := &WindowEvent{}
	for key, ev := range ebitenKeys {
		if ebiten.IsKeyPressed(key) {
			we.press(ev, true)
		}
	}
	return ebiten.IsKeyPressed(ebiten.KeyEscape), we
}

func (wind *EbitenWindow) DrawLine(ly int, scanline []uint8) error {
	return wind.screen.drawLine(ly, scanline)
}

func (wind *EbitenWindow) ShowText(lines []string, cursor int) error {
	ebiten.SetWindowTitle(title(lines, cursor))
	return nil
}

// Render returns the matrix as RGBA pixels, one per LED.
func (wind *EbitenWindow) Render() []uint8 {
	pixels := make([]uint8, 0, 4*constant.MATRIX_WIDTH*constant.MATRIX_HEIGHT)
	for row := 0; row < constant.MATRIX_HEIGHT; row++ {
		for col := 0; col < constant.MATRIX_WIDTH; col++ {
			c := wind.screen.color(row, col)
			pixels = append(pixels, c[0], c[1], c[2], 0xff)
		}
	}
	return pixels
}

func (wind *EbitenWindow) EnqueueAudioBuffer(buf []float32) error {
	return wind.audio.push(buf)
}

// ebitenAudioReader streams queued frames as signed 16-bit little endian
// stereo, and silence while the queue is empty.
type ebitenAudioReader struct {
	queue   *audioQueue
	pending []uint8
}

func (r *ebitenAudioReader) Read(buf []uint8) (int, error) {
	if len(r.pending) == 0 {
		frame := r.queue.pop()
		if frame == nil {
			frame = make([]float32, constant.AUDIO_SAMPLES*constant.CHANNELS)
		}
		r.pending = make([]uint8, 2*len(frame))
		for i, v := range frame {
			binary.LittleEndian.PutUint16(r.pending[2*i:], uint16(int16(v*0x7fff)))
		}
	}
	n := copy(buf, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}
