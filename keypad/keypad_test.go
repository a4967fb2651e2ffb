package keypad

import (
	"testing"

	"github.com/ushitora-anqou/slotassets/constant"
)

func TestPressedOnce(t *testing.T) {
	k := NewKeypad()
	k.Latch(1<<constant.DIR_RIGHT, 0)
	if !k.Pressed(RIGHT) || k.Pressed(LEFT) {
		t.Fatalf("first frame: RIGHT must be pressed")
	}
	k.Latch(1<<constant.DIR_RIGHT, 0)
	if k.Pressed(RIGHT) || !k.Held(RIGHT) {
		t.Fatalf("second frame: RIGHT must be held, not pressed")
	}
	k.Latch(0, 0)
	k.Latch(1<<constant.DIR_RIGHT, 0)
	if !k.Pressed(RIGHT) {
		t.Fatalf("RIGHT must be pressed again after release")
	}
}

func TestActions(t *testing.T) {
	k := NewKeypad()
	k.Latch(1<<constant.DIR_UP, 1<<constant.ACT_B)
	table := []struct {
		button   Button
		expected bool
	}{
		{UP, true},
		{DOWN, false},
		{A, false},
		{B, true},
	}
	for _, entry := range table {
		if k.Pressed(entry.button) != entry.expected {
			t.Fatalf("Pressed(%08b): (got: %v) (expected: %v)", entry.button, !entry.expected, entry.expected)
		}
	}
}
