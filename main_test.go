package main

import (
	"bytes"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"github.com/ushitora-anqou/slotassets/firmware"
)

func TestExportAssets(t *testing.T) {
	var buf bytes.Buffer
	if err := exportAssets("crc", &buf, 0); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "0x") || len(strings.TrimSpace(buf.String())) != 6 {
		t.Fatalf("crc: %q", buf.String())
	}

	buf.Reset()
	if err := exportAssets("json", &buf, 0); err != nil {
		t.Fatal(err)
	}
	var d firmware.Dump
	if err := jsoniter.Unmarshal(buf.Bytes(), &d); err != nil {
		t.Fatal(err)
	}
	if len(d.Labels) != 14 {
		t.Fatalf("json: %d labels", len(d.Labels))
	}

	buf.Reset()
	if err := exportAssets("hex", &buf, 0x100); err != nil {
		t.Fatal(err)
	}
	img, err := firmware.ReadHex(&buf, 0x100)
	if err != nil {
		t.Fatal(err)
	}
	if err := img.Verify(); err != nil {
		t.Fatal(err)
	}

	if err := exportAssets("bin", &buf, 0); err == nil {
		t.Fatalf("expected error for an unknown format")
	}
}
