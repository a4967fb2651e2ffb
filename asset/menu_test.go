package asset

import (
	"errors"
	"strings"
	"testing"

	"github.com/ushitora-anqou/slotassets/constant"
)

func TestMenuLabelWidth(t *testing.T) {
	for m := MENU_PAYED_OUT; m <= MENU_BACK; m++ {
		label, err := MenuLabel(m)
		if err != nil {
			t.Fatalf("MenuLabel(%v): %v", m, err)
		}
		if len(label) != constant.LABEL_WIDTH {
			t.Fatalf("MenuLabel(%v): (got: %d) (expected: %d) %q", m, len(label), constant.LABEL_WIDTH, label)
		}
	}
}

func TestMenuLabelText(t *testing.T) {
	table := []struct {
		menu Menu
		text string
	}{
		{MENU_PAYED_OUT, "PayedOut"},
		{MENU_SHIP_2_MATCH, "Ship 2 Match"},
		{MENU_3_ALIEN, "3 Alien"},
		{MENU_EEPROM, "EEprom"},
		{MENU_CREDITS, "Credits"},
		{MENU_BACK, "Back"},
	}

	for _, entry := range table {
		label, err := MenuLabel(entry.menu)
		if err != nil {
			t.Fatalf("MenuLabel(%v): %v", entry.menu, err)
		}
		expected := entry.text + strings.Repeat(" ", constant.LABEL_WIDTH-len(entry.text))
		if label != expected {
			t.Fatalf("MenuLabel(%v): (got: %q) (expected: %q)", entry.menu, label, expected)
		}
	}
}

func TestMenuLabelInvalid(t *testing.T) {
	for _, m := range []Menu{-1, 14, 99} {
		label, err := MenuLabel(m)
		if !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("MenuLabel(%d): expected ErrInvalidKey, got %v", m, err)
		}
		if label != "" {
			t.Fatalf("MenuLabel(%d): expected empty label, got %q", m, label)
		}
		var keyErr *InvalidKeyError
		if !errors.As(err, &keyErr) || keyErr.Table != "menu" || keyErr.Key != int(m) {
			t.Fatalf("MenuLabel(%d): unexpected error detail %#v", m, err)
		}
	}
}

func TestCopyMenuLabel(t *testing.T) {
	var buf Buffer
	if err := CopyMenuLabel(&buf, MENU_2_MATCH); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "2 Match             " {
		t.Fatalf("CopyMenuLabel: got %q", buf.String())
	}

	// A shorter label fully overwrites a longer one
	if err := CopyMenuLabel(&buf, MENU_BACK); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Back                " {
		t.Fatalf("CopyMenuLabel: stale characters left in %q", buf.String())
	}

	if err := CopyMenuLabel(&buf, 99); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("CopyMenuLabel(99): expected ErrInvalidKey, got %v", err)
	}
	if buf.String() != "Back                " {
		t.Fatalf("CopyMenuLabel(99): buffer modified to %q", buf.String())
	}
}

func TestMenuLabelIsCopy(t *testing.T) {
	var buf Buffer
	if err := CopyMenuLabel(&buf, MENU_CREDITS); err != nil {
		t.Fatal(err)
	}
	buf[0] = 'X'
	label, _ := MenuLabel(MENU_CREDITS)
	if label[0] != 'C' {
		t.Fatalf("table modified through a caller buffer: %q", label)
	}
}

func TestMenuString(t *testing.T) {
	if MENU_CREDITS.String() != "MENU_CREDITS" {
		t.Fatalf("got %q", MENU_CREDITS.String())
	}
	if Menu(42).String() != "MENU_INVALID" {
		t.Fatalf("got %q", Menu(42).String())
	}
}
