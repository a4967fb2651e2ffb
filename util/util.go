package util

func BoolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// TickCounter reports a posedge once every target ticks.
type TickCounter struct {
	current, target uint
}

func NewTickCounter(target uint) *TickCounter {
	if target == 0 {
		target = 1
	}
	return &TickCounter{target: target}
}

func (tc *TickCounter) Tick(tick uint) bool {
	posedge := false
	tc.current += tick
	if tc.current >= tc.target {
		tc.current -= tc.target
		posedge = true
	}
	return posedge
}

func (tc *TickCounter) Reset() {
	tc.current = 0
}
