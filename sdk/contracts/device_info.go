package contracts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDestination is returned when a destination address is not of the form client:port.
var ErrInvalidDestination = errors.New("invalid MIDI destination")

// DeviceInfo contains information about a MIDI output the sink can deliver to.
type DeviceInfo struct {
	Number  int    // Port number as reported by the driver.
	Name    string // Full port name, including the sequencer address suffix.
	Address string // Sequencer address (client:port), empty if the driver does not expose one.
}

// Destination addresses a sequencer port as client:port.
type Destination struct {
	Client int
	Port   int
}

// String formats the destination the way ALSA prints sequencer addresses.
func (d Destination) String() string {
	return fmt.Sprintf("%d:%d", d.Client, d.Port)
}

// ParseDestination parses text of the form client:port, both non-negative integers.
func ParseDestination(s string) (Destination, error) {
	client, port, ok := strings.Cut(s, ":")
	if !ok {
		return Destination{}, fmt.Errorf("%w: %q", ErrInvalidDestination, s)
	}
	c, err := strconv.Atoi(client)
	if err != nil || c < 0 {
		return Destination{}, fmt.Errorf("%w: bad client in %q", ErrInvalidDestination, s)
	}
	p, err := strconv.Atoi(port)
	if err != nil || p < 0 {
		return Destination{}, fmt.Errorf("%w: bad port in %q", ErrInvalidDestination, s)
	}
	return Destination{Client: c, Port: p}, nil
}
