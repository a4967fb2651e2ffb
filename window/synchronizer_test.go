package window

import "testing"

type fakeClock struct {
	now    int64
	delays []int64
}

func (c *fakeClock) getTicks() int64 {
	return c.now
}

func (c *fakeClock) delay(us int64) {
	c.delays = append(c.delays, us)
	if us > 0 {
		c.now += us
	}
}

func TestMaySleep(t *testing.T) {
	c := &fakeClock{}
	ts := newTimeSynchronizer(c, 50) // 20ms per frame

	c.now += 5000
	ts.MaySleep()
	c.now += 30000 // a slow frame
	ts.MaySleep()

	expected := []int64{15000, -10000}
	for i := range expected {
		if c.delays[i] != expected[i] {
			t.Fatalf("delays: (got: %v) (expected: %v)", c.delays, expected)
		}
	}
}
