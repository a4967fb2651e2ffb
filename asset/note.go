package asset

import (
	"strings"

	"github.com/ushitora-anqou/slotassets/constant"
)

// Note names a pitch. Notes are numbered in ascending pitch order, so a
// higher Note always has a higher frequency.
type Note int

const (
	NOTE_B0 Note = iota
	NOTE_C1
	NOTE_CS1
	NOTE_D1
	NOTE_DS1
	NOTE_E1
	NOTE_F1
	NOTE_FS1
	NOTE_G1
	NOTE_GS1
	NOTE_A1
	NOTE_AS1
	NOTE_B1
	NOTE_C2
	NOTE_CS2
	NOTE_D2
	NOTE_DS2
	NOTE_E2
	NOTE_F2
	NOTE_FS2
	NOTE_G2
	NOTE_GS2
	NOTE_A2
	NOTE_AS2
	NOTE_B2
	NOTE_C3
	NOTE_CS3
	NOTE_D3
	NOTE_DS3
	NOTE_E3
	NOTE_F3
	NOTE_FS3
	NOTE_G3
	NOTE_GS3
	NOTE_A3
	NOTE_AS3
	NOTE_B3
	NOTE_C4
	NOTE_CS4
	NOTE_D4
	NOTE_DS4
	NOTE_E4
	NOTE_F4
	NOTE_FS4
	NOTE_G4
	NOTE_GS4
	NOTE_A4
	NOTE_AS4
	NOTE_B4
	NOTE_C5
	NOTE_CS5
	NOTE_D5
	NOTE_DS5
	NOTE_E5
	NOTE_F5
	NOTE_FS5
	NOTE_G5
	NOTE_GS5
	NOTE_A5
	NOTE_AS5
	NOTE_B5
	NOTE_C6
	NOTE_CS6
	NOTE_D6
	NOTE_DS6
	NOTE_E6
	NOTE_F6
	NOTE_FS6
	NOTE_G6
	NOTE_GS6
	NOTE_A6
	NOTE_AS6
	NOTE_B6
	NOTE_C7
	NOTE_CS7
	NOTE_D7
	NOTE_DS7
	NOTE_E7
	NOTE_F7
	NOTE_FS7
	NOTE_G7
	NOTE_GS7
	NOTE_A7
	NOTE_AS7
	NOTE_B7
	NOTE_C8
	NOTE_CS8
	NOTE_D8
	NOTE_DS8
)

type noteEntry struct {
	name string
	hz   int
}

var notes = [constant.NOTE_COUNT]noteEntry{
	{"B0", 31},
	{"C1", 33},
	{"CS1", 35},
	{"D1", 37},
	{"DS1", 39},
	{"E1", 41},
	{"F1", 44},
	{"FS1", 46},
	{"G1", 49},
	{"GS1", 52},
	{"A1", 55},
	{"AS1", 58},
	{"B1", 62},
	{"C2", 65},
	{"CS2", 69},
	{"D2", 73},
	{"DS2", 78},
	{"E2", 82},
	{"F2", 87},
	{"FS2", 93},
	{"G2", 98},
	{"GS2", 104},
	{"A2", 110},
	{"AS2", 117},
	{"B2", 123},
	{"C3", 131},
	{"CS3", 139},
	{"D3", 147},
	{"DS3", 156},
	{"E3", 165},
	{"F3", 175},
	{"FS3", 185},
	{"G3", 196},
	{"GS3", 208},
	{"A3", 220},
	{"AS3", 233},
	{"B3", 247},
	{"C4", 262},
	{"CS4", 277},
	{"D4", 294},
	{"DS4", 311},
	{"E4", 330},
	{"F4", 349},
	{"FS4", 370},
	{"G4", 392},
	{"GS4", 415},
	{"A4", 440},
	{"AS4", 466},
	{"B4", 494},
	{"C5", 523},
	{"CS5", 554},
	{"D5", 587},
	{"DS5", 622},
	{"E5", 659},
	{"F5", 698},
	{"FS5", 740},
	{"G5", 784},
	{"GS5", 831},
	{"A5", 880},
	{"AS5", 932},
	{"B5", 988},
	{"C6", 1047},
	{"CS6", 1109},
	{"D6", 1175},
	{"DS6", 1245},
	{"E6", 1319},
	{"F6", 1397},
	{"FS6", 1480},
	{"G6", 1568},
	{"GS6", 1661},
	{"A6", 1760},
	{"AS6", 1865},
	{"B6", 1976},
	{"C7", 2093},
	{"CS7", 2217},
	{"D7", 2349},
	{"DS7", 2489},
	{"E7", 2637},
	{"F7", 2794},
	{"FS7", 2960},
	{"G7", 3136},
	{"GS7", 3322},
	{"A7", 3520},
	{"AS7", 3729},
	{"B7", 3951},
	{"C8", 4186},
	{"CS8", 4435},
	{"D8", 4699},
	{"DS8", 4978},
}

var notesByName = func() map[string]Note {
	m := make(map[string]Note, len(notes))
	for i, e := range notes {
		m[e.name] = Note(i)
	}
	return m
}()

func (n Note) valid() bool {
	return 0 <= n && int(n) < constant.NOTE_COUNT
}

func (n Note) String() string {
	if !n.valid() {
		return "INVALID"
	}
	return notes[n].name
}

// Frequency returns the frequency of n in Hz.
func (n Note) Frequency() (int, error) {
	return Frequency(n)
}

// Frequency returns the frequency of n in Hz.
func Frequency(n Note) (int, error) {
	if !n.valid() {
		return 0, invalidKey("note", int(n))
	}
	return notes[n].hz, nil
}

// ParseNote resolves a pitch name such as "A4", "NOTE_A4", "CS4" or "c#4".
func ParseNote(name string) (Note, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "NOTE_")
	key = strings.Replace(key, "#", "S", 1)
	if n, ok := notesByName[key]; ok {
		return n, nil
	}
	return 0, invalidKey("note", name)
}

// NoteFrequency returns the frequency in Hz of the pitch called name.
func NoteFrequency(name string) (int, error) {
	n, err := ParseNote(name)
	if err != nil {
		return 0, err
	}
	return notes[n].hz, nil
}
