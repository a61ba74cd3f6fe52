package wire

import (
	"errors"
	"testing"

	"github.com/leandrodaf/tmk/sdk/contracts"
)

func TestMessageNoteOn(t *testing.T) {
	msg, err := Message(contracts.NoteEvent{Pitch: 60, Velocity: 127, Channel: 1, On: true})
	if err != nil {
		t.Fatal(err)
	}

	var ch, key, vel uint8
	if !msg.GetNoteOn(&ch, &key, &vel) {
		t.Fatalf("%v is not a note-on", msg)
	}
	if ch != 1 || key != 60 || vel != 127 {
		t.Errorf("ch=%d key=%d vel=%d", ch, key, vel)
	}
	if msg.Bytes()[0] != byte(contracts.NoteOn)|1 {
		t.Errorf("status = 0x%02x", msg.Bytes()[0])
	}
}

func TestMessageNoteOff(t *testing.T) {
	msg, err := Message(contracts.NoteEvent{Pitch: 60, Velocity: 0, Channel: 1})
	if err != nil {
		t.Fatal(err)
	}
	if msg.Bytes()[0] != byte(contracts.NoteOff)|1 {
		t.Errorf("status = 0x%02x", msg.Bytes()[0])
	}
	var ch, key uint8
	if !msg.GetNoteEnd(&ch, &key) || key != 60 {
		t.Errorf("%v is not a note-off for 60", msg)
	}
}

func TestMessageRejectsOutOfRange(t *testing.T) {
	for _, pitch := range []int{-1, 128, 137} {
		if _, err := Message(contracts.NoteEvent{Pitch: pitch, On: true}); !errors.Is(err, contracts.ErrPitchOutOfRange) {
			t.Errorf("pitch %d: err = %v", pitch, err)
		}
	}
	if _, err := Message(contracts.NoteEvent{Pitch: 127, On: true}); err != nil {
		t.Errorf("pitch 127: %v", err)
	}
}

func TestAddress(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Midi Through:Midi Through Port-0 14:0", "14:0"},
		{"FLUID Synth (1234):Synth input port (1234:0) 128:0", "128:0"},
		{"Some Device", ""},
		{"NoSpaces", ""},
		{"Broken 12:x", ""},
	}
	for _, tt := range tests {
		if got := Address(tt.name); got != tt.want {
			t.Errorf("Address(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
