// Package firmware lays the asset tables out the way they sit in program
// memory on the device, and reads such images back.
//
// Layout, relative to the image base:
//
//	LABELS_OFFSET  MENU_COUNT labels of LABEL_WIDTH bytes
//	GLYPHS_OFFSET  GLYPH_COUNT glyphs of GLYPH_ROWS bytes
//	NOTES_OFFSET   NOTE_COUNT frequencies, uint16 little endian
package firmware

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"
	"github.com/sigurn/crc16"

	"github.com/ushitora-anqou/slotassets/asset"
	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/ushitora-anqou/slotassets/util"
)

const (
	LABELS_OFFSET   = 0
	GLYPHS_OFFSET   = LABELS_OFFSET + constant.MENU_COUNT*constant.LABEL_WIDTH
	NOTES_OFFSET    = GLYPHS_OFFSET + constant.GLYPH_COUNT*constant.GLYPH_ROWS
	IMAGE_SIZE      = NOTES_OFFSET + constant.NOTE_COUNT*2
	HEX_LINE_LENGTH = 16
)

var crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)

type Image struct {
	base uint32
	data [IMAGE_SIZE]byte
}

// Build lays out the built-in tables at base.
func Build(base uint32) *Image {
	img := &Image{base: base}

	var buf asset.Buffer
	for m := asset.MENU_PAYED_OUT; m <= asset.MENU_BACK; m++ {
		asset.CopyMenuLabel(&buf, m)
		copy(img.data[LABELS_OFFSET+int(m)*constant.LABEL_WIDTH:], buf[:])
	}

	for s, g := range asset.Glyphs() {
		copy(img.data[GLYPHS_OFFSET+s*constant.GLYPH_ROWS:], g[:])
	}

	for n := asset.NOTE_B0; n <= asset.NOTE_DS8; n++ {
		hz, _ := asset.Frequency(n)
		binary.LittleEndian.PutUint16(img.data[NOTES_OFFSET+int(n)*2:], uint16(hz))
	}

	return img
}

func (img *Image) Bytes() []byte {
	ret := make([]byte, IMAGE_SIZE)
	copy(ret, img.data[:])
	return ret
}

// Checksum is the CRC-16/XMODEM of the image bytes.
func (img *Image) Checksum() uint16 {
	return crc16.Checksum(img.data[:], crcTable)
}

func (img *Image) Label(m asset.Menu) (string, error) {
	if m < 0 || int(m) >= constant.MENU_COUNT {
		return "", &asset.InvalidKeyError{Table: "menu", Key: int(m)}
	}
	off := LABELS_OFFSET + int(m)*constant.LABEL_WIDTH
	return string(img.data[off : off+constant.LABEL_WIDTH]), nil
}

func (img *Image) Glyph(s asset.GlyphSlot) (asset.Glyph, error) {
	var g asset.Glyph
	if s < 0 || int(s) >= constant.GLYPH_COUNT {
		return g, &asset.InvalidKeyError{Table: "glyph", Key: int(s)}
	}
	copy(g[:], img.data[GLYPHS_OFFSET+int(s)*constant.GLYPH_ROWS:])
	return g, nil
}

func (img *Image) Frequency(n asset.Note) (int, error) {
	if n < 0 || int(n) >= constant.NOTE_COUNT {
		return 0, &asset.InvalidKeyError{Table: "note", Key: int(n)}
	}
	return int(binary.LittleEndian.Uint16(img.data[NOTES_OFFSET+int(n)*2:])), nil
}

// Verify compares the image with the built-in tables and reports the first
// entry that differs.
func (img *Image) Verify() error {
	for m := asset.MENU_PAYED_OUT; m <= asset.MENU_BACK; m++ {
		expected, _ := asset.MenuLabel(m)
		got, _ := img.Label(m)
		if got != expected {
			return fmt.Errorf("Label mismatch at %v: expected %q, got %q", m, expected, got)
		}
	}
	for s := asset.GLYPH_STAR; s <= asset.GLYPH_THREE; s++ {
		expected, _ := asset.GlyphBitmap(s)
		got, _ := img.Glyph(s)
		if got != expected {
			return fmt.Errorf("Glyph mismatch at %v: expected %v, got %v", s, expected, got)
		}
	}
	for n := asset.NOTE_B0; n <= asset.NOTE_DS8; n++ {
		expected, _ := asset.Frequency(n)
		got, _ := img.Frequency(n)
		if got != expected {
			return fmt.Errorf("Note mismatch at %v: expected %d Hz, got %d Hz", n, expected, got)
		}
	}
	return nil
}

func (img *Image) WriteHex(w io.Writer) error {
	mem := gohex.NewMemory()
	if err := mem.AddBinary(img.base, img.data[:]); err != nil {
		return err
	}
	return mem.DumpIntelHex(w, HEX_LINE_LENGTH)
}

// ReadHex parses an Intel HEX file and extracts the image at base. Every
// byte of the image must be present.
func ReadHex(r io.Reader, base uint32) (*Image, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return nil, err
	}

	img := &Image{base: base}
	covered := 0
	end := uint64(base) + IMAGE_SIZE
	for _, seg := range mem.GetDataSegments() {
		segStart := uint64(seg.Address)
		segEnd := segStart + uint64(len(seg.Data))
		lo, hi := segStart, segEnd
		if lo < uint64(base) {
			lo = uint64(base)
		}
		if hi > end {
			hi = end
		}
		if lo >= hi {
			continue
		}
		util.Trace("firmware: segment 0x%08x+%d", seg.Address, len(seg.Data))
		copy(img.data[lo-uint64(base):hi-uint64(base)], seg.Data[lo-segStart:hi-segStart])
		covered += int(hi - lo)
	}
	if covered != IMAGE_SIZE {
		return nil, fmt.Errorf("Incomplete image at 0x%08x: expected %d bytes, found %d", base, IMAGE_SIZE, covered)
	}
	return img, nil
}
