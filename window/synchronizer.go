package window

import "time"

type clock interface {
	getTicks() int64 // microseconds
	delay(us int64)
}

type systemClock struct {
	start time.Time
}

func (c *systemClock) getTicks() int64 {
	return time.Since(c.start).Microseconds()
}

func (c *systemClock) delay(us int64) {
	if us > 1000 { // Larger than 1ms
		time.Sleep(time.Duration(us) * time.Microsecond)
	}
}

type TimeSynchronizer struct {
	prevTicks, usPerFrame int64
	clock                 clock
}

func NewTimeSynchronizer(targetFPS float64) *TimeSynchronizer {
	return newTimeSynchronizer(&systemClock{start: time.Now()}, targetFPS)
}

func newTimeSynchronizer(c clock, targetFPS float64) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTicks:  c.getTicks(),
		usPerFrame: int64(1000000.0 / targetFPS),
		clock:      c,
	}
}

func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.clock.getTicks()
	if cur < ts.prevTicks {
		return
	}
	diff := ts.usPerFrame - (cur - ts.prevTicks)
	ts.clock.delay(diff)
	ts.prevTicks += ts.usPerFrame
}
