package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ushitora-anqou/slotassets/constant"
)

var envKeys = []string{"SLOT_TRACE", "SLOT_CPUPROFILE", "SLOT_SCALE", "SLOT_VOLUME"}

func clearEnv(t *testing.T) {
	for _, key := range envKeys {
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Trace || cfg.Scale != constant.WINDOW_SCALE || cfg.Volume != 0.25 {
		t.Fatalf("defaults: %+v", cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "SLOT_TRACE=1\nSLOT_SCALE=8\nSLOT_VOLUME=0.5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// The process environment wins over the file
	os.Setenv("SLOT_SCALE", "4")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Trace || cfg.Scale != 4 || cfg.Volume != 0.5 {
		t.Fatalf("Load: %+v", cfg)
	}
}

func TestInvalidValues(t *testing.T) {
	table := []struct {
		key, value string
	}{
		{"SLOT_SCALE", "0"},
		{"SLOT_SCALE", "big"},
		{"SLOT_VOLUME", "1.5"},
		{"SLOT_VOLUME", "loud"},
	}

	for _, entry := range table {
		clearEnv(t)
		os.Setenv(entry.key, entry.value)
		if _, err := FromEnv(); err == nil {
			t.Fatalf("FromEnv: expected error for %s=%s", entry.key, entry.value)
		}
	}
}
