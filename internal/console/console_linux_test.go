//go:build linux

package console

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRejectsRegularFiles(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := New(f); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("err = %v, want ErrNotTerminal", err)
	}
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "tty-does-not-exist"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestRestoreBeforeSave(t *testing.T) {
	c := &Console{fd: -1, kbMode: -1}
	if err := c.Restore(); !errors.Is(err, ErrNotSaved) {
		t.Fatalf("err = %v, want ErrNotSaved", err)
	}
}

func TestTranslatedMode(t *testing.T) {
	tests := []struct {
		saved int
		want  int
	}{
		{-1, kXlate},
		{kRaw, kXlate},
		{kMediumRaw, kXlate},
		{kOff, kXlate},
		{kXlate, kXlate},
		{kUnicode, kUnicode},
	}
	for _, tt := range tests {
		c := &Console{kbMode: tt.saved}
		if got := c.translatedMode(); got != tt.want {
			t.Errorf("saved %d: translatedMode = %d, want %d", tt.saved, got, tt.want)
		}
	}
}
