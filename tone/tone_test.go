package tone

import (
	"testing"

	"github.com/ushitora-anqou/slotassets/asset"
	"github.com/ushitora-anqou/slotassets/constant"
)

func fillBuffer(t *testing.T, tn *Tone) []float32 {
	for i := 0; i < constant.FRAME_TICKS-1; i++ {
		if tn.Update(1) {
			t.Fatalf("buffer reported full after %d ticks", i+1)
		}
	}
	if !tn.Update(1) {
		t.Fatalf("buffer not full after %d ticks", constant.FRAME_TICKS)
	}
	return tn.GetAudioBuffer()
}

func TestSilence(t *testing.T) {
	tn := NewTone(0.5)
	buf := fillBuffer(t, tn)
	if len(buf) != constant.AUDIO_SAMPLES*constant.CHANNELS {
		t.Fatalf("buffer length: %d", len(buf))
	}
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("sample %d: expected silence, got %v", i, v)
		}
	}
}

func TestSquareWave(t *testing.T) {
	hz, err := asset.Frequency(asset.NOTE_A4)
	if err != nil {
		t.Fatal(err)
	}
	tn := NewTone(0.5)
	if err := tn.SetFrequency(hz); err != nil {
		t.Fatal(err)
	}
	buf := fillBuffer(t, tn)

	rises := 0
	for i := 2; i < len(buf); i += 2 {
		if buf[i] != buf[i+1] {
			t.Fatalf("sample %d: left and right differ", i/2)
		}
		if buf[i] != 0.5 && buf[i] != -0.5 {
			t.Fatalf("sample %d: unexpected amplitude %v", i/2, buf[i])
		}
		if buf[i-2] < 0 && buf[i] > 0 {
			rises++
		}
	}

	// 440 Hz over one 1/60 s frame is a little over seven periods
	if rises < 6 || rises > 8 {
		t.Fatalf("square wave: %d rising edges in one frame", rises)
	}
}

func TestSetFrequencyInvalid(t *testing.T) {
	tn := NewTone(1)
	if err := tn.SetFrequency(-1); err == nil {
		t.Fatalf("SetFrequency(-1): expected error")
	}
	if err := tn.SetFrequency(constant.CLOCK_FREQ); err == nil {
		t.Fatalf("SetFrequency(CLOCK_FREQ): expected error")
	}
	if tn.Frequency() != 0 {
		t.Fatalf("frequency changed by a failed SetFrequency: %d", tn.Frequency())
	}
}

func TestVolumeClamp(t *testing.T) {
	tn := NewTone(3)
	tn.SetFrequency(1000)
	for _, v := range fillBuffer(t, tn) {
		if v > 1 || v < -1 {
			t.Fatalf("sample out of range: %v", v)
		}
	}
}

func TestPitchIsExact(t *testing.T) {
	for _, n := range []asset.Note{asset.NOTE_B0, asset.NOTE_A4, asset.NOTE_C7, asset.NOTE_DS8} {
		hz, err := asset.Frequency(n)
		if err != nil {
			t.Fatal(err)
		}
		tn := NewTone(1)
		if err := tn.SetFrequency(hz); err != nil {
			t.Fatal(err)
		}

		// Count full periods over one second of clock ticks
		periods := 0
		for i := 0; i < constant.CLOCK_FREQ; i++ {
			prev := tn.waveDutyPos
			tn.Update(1)
			if prev == WAVE_STEPS-1 && tn.waveDutyPos == 0 {
				periods++
			}
		}
		if periods != hz {
			t.Fatalf("%v: (got: %d Hz) (expected: %d Hz)", n, periods, hz)
		}
	}
}
