package contracts

import (
	"errors"
	"testing"
)

func TestParseDestination(t *testing.T) {
	tests := []struct {
		in      string
		want    Destination
		wantErr bool
	}{
		{in: "128:0", want: Destination{Client: 128, Port: 0}},
		{in: "14:3", want: Destination{Client: 14, Port: 3}},
		{in: "128", wantErr: true},
		{in: "a:0", wantErr: true},
		{in: "1:b", wantErr: true},
		{in: "-1:0", wantErr: true},
		{in: ":", wantErr: true},
		{in: "--list", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDestination(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDestination) {
				t.Errorf("ParseDestination(%q) err = %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseDestination(%q) = %v, %v", tt.in, got, err)
		}
		if got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestNoteEventCommand(t *testing.T) {
	if (NoteEvent{On: true}).Command() != NoteOn {
		t.Error("note-on event")
	}
	if (NoteEvent{}).Command() != NoteOff {
		t.Error("note-off event")
	}
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]LogLevel{"debug": DebugLevel, "": InfoLevel, "WARN": WarnLevel, "error": ErrorLevel} {
		if got, err := ParseLogLevel(in); err != nil || got != want {
			t.Errorf("ParseLogLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLogLevel("loud"); err == nil {
		t.Error("unknown level accepted")
	}
}
