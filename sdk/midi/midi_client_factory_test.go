package midi

import (
	"errors"
	"testing"

	"github.com/leandrodaf/tmk/internal/logger"
	"github.com/leandrodaf/tmk/internal/midi/dispatch"
	"github.com/leandrodaf/tmk/sdk/contracts"
)

type stubPort struct {
	connectErr error
	connected  []contracts.Destination
	written    []contracts.NoteEvent
	closes     int
}

func (p *stubPort) Write(ev contracts.NoteEvent) error {
	p.written = append(p.written, ev)
	return nil
}

func (p *stubPort) Connect(dest contracts.Destination) error {
	p.connected = append(p.connected, dest)
	return p.connectErr
}

func (p *stubPort) ListDestinations() ([]contracts.DeviceInfo, error) { return nil, nil }

func (p *stubPort) Close() error {
	p.closes++
	return nil
}

func TestApplyDefaultOptions(t *testing.T) {
	options, err := applyDefaultOptions()
	if err != nil {
		t.Fatal(err)
	}
	if options.Logger == nil {
		t.Error("no default logger")
	}
	if options.PortName != DefaultPortName {
		t.Errorf("PortName = %q", options.PortName)
	}
	if options.QueueSize != dispatch.DefaultQueueSize {
		t.Errorf("QueueSize = %d", options.QueueSize)
	}
	if options.Destination != nil {
		t.Errorf("Destination = %v", options.Destination)
	}
}

func TestApplyDefaultOptionsKeepsGivenValues(t *testing.T) {
	log := logger.NewNopLogger()
	dest := contracts.Destination{Client: 128, Port: 0}

	options, err := applyDefaultOptions(
		contracts.WithLogger(log),
		contracts.WithPortName("keys"),
		contracts.WithQueueSize(8),
		contracts.WithDestination(dest),
	)
	if err != nil {
		t.Fatal(err)
	}
	if options.Logger != log {
		t.Error("logger replaced")
	}
	if options.PortName != "keys" || options.QueueSize != 8 {
		t.Errorf("got port %q queue %d", options.PortName, options.QueueSize)
	}
	if options.Destination == nil || *options.Destination != dest {
		t.Errorf("Destination = %v", options.Destination)
	}
}

func TestNewSinkConnectsDestination(t *testing.T) {
	port := &stubPort{}
	options, _ := applyDefaultOptions(
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithDestination(contracts.Destination{Client: 14, Port: 0}),
	)

	sink, err := newSink(&options, func(*contracts.ClientOptions) (contracts.Port, error) { return port, nil })
	if err != nil {
		t.Fatal(err)
	}
	sink.Send(contracts.NoteEvent{Pitch: 60, Velocity: contracts.VelocityOn, Channel: contracts.DefaultChannel, On: true})
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	if len(port.connected) != 1 || port.connected[0].String() != "14:0" {
		t.Errorf("connected = %v", port.connected)
	}
	if len(port.written) != 1 || port.written[0].Pitch != 60 {
		t.Errorf("written = %v", port.written)
	}
	if port.closes != 1 {
		t.Errorf("port closed %d times", port.closes)
	}
}

func TestNewSinkClosesPortWhenConnectFails(t *testing.T) {
	refused := errors.New("no such port")
	port := &stubPort{connectErr: refused}
	options, _ := applyDefaultOptions(
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithDestination(contracts.Destination{Client: 99, Port: 9}),
	)

	_, err := newSink(&options, func(*contracts.ClientOptions) (contracts.Port, error) { return port, nil })
	if !errors.Is(err, refused) {
		t.Fatalf("err = %v", err)
	}
	if port.closes != 1 {
		t.Errorf("port closed %d times", port.closes)
	}
}

func TestNewSinkWithoutDestination(t *testing.T) {
	port := &stubPort{}
	options, _ := applyDefaultOptions(contracts.WithLogger(logger.NewNopLogger()))

	sink, err := newSink(&options, func(*contracts.ClientOptions) (contracts.Port, error) { return port, nil })
	if err != nil {
		t.Fatal(err)
	}
	_ = sink.Close()
	if len(port.connected) != 0 {
		t.Errorf("connected = %v", port.connected)
	}
}
