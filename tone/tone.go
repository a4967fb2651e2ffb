// Package tone is a square-wave generator fed with note frequencies.
package tone

import (
	"fmt"

	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/ushitora-anqou/slotassets/util"
)

// One period of the 50% duty square wave
var wavePattern = [WAVE_STEPS]float32{-1.0, -1.0, -1.0, -1.0, +1.0, +1.0, +1.0, +1.0}

const WAVE_STEPS = 8

type Tone struct {
	volume      float32
	freq        int
	waveDutyPos int
	// Advances by WAVE_STEPS*freq per tick; a wave step is taken on every
	// CLOCK_FREQ accumulated, so the pitch is exact on average.
	phase       int
	tickSample  *util.TickCounter
	buffer      []float32
	bufferIndex int
}

func NewTone(volume float32) *Tone {
	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	return &Tone{
		volume:     volume,
		buffer:     make([]float32, constant.AUDIO_SAMPLES*constant.CHANNELS),
		tickSample: util.NewTickCounter(constant.CLOCK_FREQ / constant.AUDIO_FREQ),
	}
}

// SetFrequency changes the pitch. 0 silences the output.
func (t *Tone) SetFrequency(hz int) error {
	if hz < 0 || hz > constant.CLOCK_FREQ/WAVE_STEPS {
		return fmt.Errorf("Invalid tone frequency: %d Hz", hz)
	}
	if hz == t.freq {
		return nil
	}
	t.freq = hz
	t.waveDutyPos = 0
	t.phase = 0
	util.Trace("tone: %d Hz", hz)
	return nil
}

func (t *Tone) Frequency() int {
	return t.freq
}

func (t *Tone) getAmplitude() float32 {
	if t.freq == 0 {
		return 0
	}
	return wavePattern[t.waveDutyPos] * t.volume
}

// Update advances the generator by tick clock ticks and reports whether the
// audio buffer has just been filled.
func (t *Tone) Update(tick uint) bool {
	full := false
	for ; tick > 0; tick-- {
		t.phase += WAVE_STEPS * t.freq
		if t.phase >= constant.CLOCK_FREQ {
			t.phase -= constant.CLOCK_FREQ
			t.waveDutyPos = (t.waveDutyPos + 1) % WAVE_STEPS
		}

		if t.tickSample.Tick(1) {
			val := t.getAmplitude()
			t.buffer[t.bufferIndex] = val   // left
			t.buffer[t.bufferIndex+1] = val // right
			t.bufferIndex += 2
			if t.bufferIndex == len(t.buffer) {
				t.bufferIndex = 0
				full = true
			}
		}
	}
	return full
}

func (t *Tone) GetAudioBuffer() []float32 {
	return t.buffer
}
