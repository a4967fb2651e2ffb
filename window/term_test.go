package window

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ushitora-anqou/slotassets/constant"
)

func TestTermHandleEvents(t *testing.T) {
	keys := make(chan rune, 4)
	wind := NewTermWindow(&bytes.Buffer{}, keys)

	keys <- 'd'
	keys <- 'k'
	keys <- 'x'
	escape, we := wind.HandleEvents()
	if escape {
		t.Fatalf("unexpected escape")
	}
	if we.Direction != 1<<constant.DIR_RIGHT || we.Action != 1<<constant.ACT_A {
		t.Fatalf("event: %+v", we)
	}

	// Keys are released on the next frame
	_, we = wind.HandleEvents()
	if we.Direction != 0 || we.Action != 0 {
		t.Fatalf("event not released: %+v", we)
	}

	keys <- 'q'
	if escape, _ := wind.HandleEvents(); !escape {
		t.Fatalf("q must quit")
	}
	close(keys)
	if escape, _ := wind.HandleEvents(); !escape {
		t.Fatalf("closed input must quit")
	}
}

func TestTermUpdateScreen(t *testing.T) {
	var out bytes.Buffer
	wind := NewTermWindow(&out, nil)
	scanline := make([]uint8, constant.MATRIX_WIDTH)
	scanline[0] = 2
	if err := wind.DrawLine(0, scanline); err != nil {
		t.Fatal(err)
	}
	if err := wind.DrawLine(0, scanline[:3]); err == nil {
		t.Fatalf("DrawLine: expected length error")
	}
	wind.ShowText([]string{"Credits             ", "Back                "}, 1)
	if err := wind.UpdateScreen(); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	if !strings.Contains(text, "\x1b[38;2;255;32;32m") {
		t.Fatalf("lit pixel colour missing")
	}
	if !strings.Contains(text, "> |Back                |") || !strings.Contains(text, "  |Credits             |") {
		t.Fatalf("LCD rows missing: %q", text)
	}
}

func TestTermAudioDropped(t *testing.T) {
	var out bytes.Buffer
	wind := NewTermWindow(&out, nil)
	if err := wind.EnqueueAudioBuffer(make([]float32, 3)); err == nil {
		t.Fatalf("expected length error")
	}
	if err := wind.EnqueueAudioBuffer(make([]float32, constant.AUDIO_SAMPLES*constant.CHANNELS)); err != nil {
		t.Fatal(err)
	}
	if err := wind.EnqueueAudioBuffer(make([]float32, constant.AUDIO_SAMPLES*constant.CHANNELS)); err != nil {
		t.Fatal(err)
	}
	if err := wind.UpdateScreen(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "audio frames dropped: 2\r\n") {
		t.Fatalf("dropped frame count missing: %q", out.String())
	}
}
