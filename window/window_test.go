package window

import (
	"testing"

	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/ushitora-anqou/slotassets/matrix"
)

func TestScreenDrawLine(t *testing.T) {
	s := &screen{}
	line := make([]uint8, constant.MATRIX_WIDTH)
	line[3] = matrix.PIXEL_ON
	if err := s.drawLine(7, line); err != nil {
		t.Fatal(err)
	}
	if s.color(7, 3) != palette[matrix.PIXEL_ON] || s.color(7, 4) != palette[matrix.PIXEL_GAP] {
		t.Fatalf("unexpected colours in row 7")
	}

	if err := s.drawLine(8, line); err == nil {
		t.Fatalf("expected error for row 8")
	}
	if err := s.drawLine(0, line[1:]); err == nil {
		t.Fatalf("expected error for a short scanline")
	}
}

func TestTitle(t *testing.T) {
	lines := []string{"PayedOut            ", "Wagered             "}
	tests := []struct {
		cursor   int
		expected string
	}{
		{0, "slotassets - PayedOut"},
		{1, "slotassets - Wagered"},
		{2, "slotassets"},
		{-1, "slotassets"},
	}
	for _, test := range tests {
		if got := title(lines, test.cursor); got != test.expected {
			t.Fatalf("title(%d): (got: %q) (expected: %q)", test.cursor, got, test.expected)
		}
	}
}

func TestWindowEventPress(t *testing.T) {
	we := WindowEvent{}
	we.press(WindowEvent{Direction: 1 << constant.DIR_UP}, true)
	we.press(WindowEvent{Action: 1 << constant.ACT_B}, true)
	we.press(WindowEvent{Direction: 1 << constant.DIR_UP}, false)
	if we.Direction != 0 || we.Action != 1<<constant.ACT_B {
		t.Fatalf("event: %+v", we)
	}
}
