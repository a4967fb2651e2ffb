package keypad

import "github.com/ushitora-anqou/slotassets/constant"

type Button uint8

const (
	RIGHT = Button(1 << constant.DIR_RIGHT)
	LEFT  = Button(1 << constant.DIR_LEFT)
	UP    = Button(1 << constant.DIR_UP)
	DOWN  = Button(1 << constant.DIR_DOWN)
	A     = Button(1 << (4 + constant.ACT_A))
	B     = Button(1 << (4 + constant.ACT_B))
)

// Keypad latches the buttons held in the current frame and the previous one,
// so a press is seen exactly once.
type Keypad struct {
	held, prev Button
}

func NewKeypad() *Keypad {
	return &Keypad{}
}

// Latch starts a new frame with the given direction and action bitmasks.
func (k *Keypad) Latch(direction, action uint8) {
	k.prev = k.held
	k.held = Button(direction&0x0f) | Button(action&0x0f)<<4
}

func (k *Keypad) Held(b Button) bool {
	return k.held&b != 0
}

// Pressed reports buttons that went down in this frame.
func (k *Keypad) Pressed(b Button) bool {
	return k.held&^k.prev&b != 0
}
