package bus

// Display receives one row of matrix pixels at a time.
type Display interface {
	DrawLine(ly int, scanline []uint8) error
}

type Speaker interface {
	EnqueueAudioBuffer(buf []float32) error
}

// Text shows the rows of the character LCD.
type Text interface {
	ShowText(lines []string, cursor int) error
}

type Bus struct {
	Display
	Speaker
	Text
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Register(display Display, speaker Speaker, text Text) {
	b.Display = display
	b.Speaker = speaker
	b.Text = text
}
