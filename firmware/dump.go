package firmware

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"

	"github.com/ushitora-anqou/slotassets/asset"
)

type LabelEntry struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	Text  string `json:"text" yaml:"text"`
}

type GlyphEntry struct {
	Slot int      `json:"slot" yaml:"slot"`
	Name string   `json:"name" yaml:"name"`
	Rows []string `json:"rows" yaml:"rows"`
}

type NoteEntry struct {
	Name string `json:"name" yaml:"name"`
	Hz   int    `json:"hz" yaml:"hz"`
}

// Dump is a readable rendition of every table.
type Dump struct {
	Checksum string       `json:"checksum" yaml:"checksum"`
	Labels   []LabelEntry `json:"labels" yaml:"labels"`
	Glyphs   []GlyphEntry `json:"glyphs" yaml:"glyphs"`
	Notes    []NoteEntry  `json:"notes" yaml:"notes"`
}

func NewDump() *Dump {
	d := &Dump{
		Checksum: fmt.Sprintf("0x%04x", Build(0).Checksum()),
	}
	for m := asset.MENU_PAYED_OUT; m <= asset.MENU_BACK; m++ {
		text, _ := asset.MenuLabel(m)
		d.Labels = append(d.Labels, LabelEntry{int(m), m.String(), text})
	}
	for s, g := range asset.Glyphs() {
		d.Glyphs = append(d.Glyphs, GlyphEntry{s, asset.GlyphSlot(s).String(), g.Rows()})
	}
	for n := asset.NOTE_B0; n <= asset.NOTE_DS8; n++ {
		hz, _ := n.Frequency()
		d.Notes = append(d.Notes, NoteEntry{"NOTE_" + n.String(), hz})
	}
	return d
}

func (d *Dump) WriteJSON(w io.Writer) error {
	buf, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}

func (d *Dump) WriteYAML(w io.Writer) error {
	buf, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
