// Package melody sequences notes onto a tone generator.
package melody

import (
	"fmt"
	"time"

	"github.com/ushitora-anqou/slotassets/asset"
	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/ushitora-anqou/slotassets/util"
)

// REST holds the generator silent for the step's duration.
const REST asset.Note = -1

type Step struct {
	Note     asset.Note
	Duration time.Duration
}

// FIVE_TONE is the alien contact motif.
var FIVE_TONE = []Step{
	{asset.NOTE_G6, 400 * time.Millisecond},
	{asset.NOTE_A6, 400 * time.Millisecond},
	{asset.NOTE_F6, 400 * time.Millisecond},
	{asset.NOTE_F5, 400 * time.Millisecond},
	{asset.NOTE_C6, 800 * time.Millisecond},
}

// Scale plays every note from..to, both included.
func Scale(from, to asset.Note, each time.Duration) ([]Step, error) {
	if _, err := asset.Frequency(from); err != nil {
		return nil, err
	}
	if _, err := asset.Frequency(to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("Invalid scale: %v is above %v", from, to)
	}
	steps := make([]Step, 0, to-from+1)
	for n := from; n <= to; n++ {
		steps = append(steps, Step{n, each})
	}
	return steps, nil
}

type Generator interface {
	SetFrequency(hz int) error
}

type Player struct {
	gen       Generator
	steps     []Step
	index     int
	remaining uint
	playing   bool
}

func NewPlayer(gen Generator) *Player {
	return &Player{gen: gen}
}

func durationTicks(d time.Duration) uint {
	return uint(d * constant.CLOCK_FREQ / time.Second)
}

// Play replaces whatever is playing. Every step is checked before anything
// is sounded.
func (p *Player) Play(steps []Step) error {
	for i, step := range steps {
		if step.Duration <= 0 {
			return fmt.Errorf("Invalid duration at step %d: %v", i, step.Duration)
		}
		if step.Note == REST {
			continue
		}
		if _, err := asset.Frequency(step.Note); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	p.steps = append([]Step(nil), steps...)
	p.index = 0
	p.playing = len(p.steps) > 0
	if !p.playing {
		return p.gen.SetFrequency(0)
	}
	return p.start()
}

func (p *Player) start() error {
	step := p.steps[p.index]
	p.remaining = durationTicks(step.Duration)
	hz := 0
	if step.Note != REST {
		hz, _ = asset.Frequency(step.Note)
	}
	util.Trace("melody: step %d %v %v", p.index, step.Note, step.Duration)
	return p.gen.SetFrequency(hz)
}

func (p *Player) Stop() error {
	p.playing = false
	p.steps = nil
	return p.gen.SetFrequency(0)
}

func (p *Player) Playing() bool {
	return p.playing
}

func (p *Player) Update(tick uint) error {
	for p.playing && tick > 0 {
		if tick < p.remaining {
			p.remaining -= tick
			return nil
		}
		tick -= p.remaining
		p.index++
		if p.index >= len(p.steps) {
			return p.Stop()
		}
		if err := p.start(); err != nil {
			return err
		}
	}
	return nil
}
