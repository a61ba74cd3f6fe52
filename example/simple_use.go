package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/leandrodaf/tmk/internal/logger"
	"github.com/leandrodaf/tmk/internal/machine"
	"github.com/leandrodaf/tmk/sdk/contracts"
	"github.com/leandrodaf/tmk/sdk/midi"
)

// scriptController stands in for the console: nothing is switched, exit just
// ends the script.
type scriptController struct {
	log  contracts.Logger
	done chan int
}

func (c *scriptController) RequestKeymap(mode contracts.KeymapMode) {
	c.log.Info("keyboard mode requested", c.log.Field().String("mode", mode.String()))
}

func (c *scriptController) Terminate(code int) {
	c.done <- code
}

func main() {
	log := logger.NewZapLogger()

	devices, err := midi.ListDestinations(contracts.WithLogger(log))
	if err != nil {
		log.Error("Failed to list MIDI destinations", log.Field().Error("error", err))
		return
	}
	fmt.Println("Available MIDI destinations:", devices)

	opts := []contracts.Option{
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.DebugLevel),
		contracts.WithPortName("tmk example"),
	}
	if len(os.Args) > 1 {
		dest, err := contracts.ParseDestination(os.Args[1])
		if err != nil {
			log.Error("Bad destination", log.Field().Error("error", err))
			return
		}
		opts = append(opts, contracts.WithDestination(dest))
	}

	sink, err := midi.NewMIDISink(opts...)
	if err != nil {
		log.Error("Failed to initialize MIDI sink", log.Field().Error("error", err))
		return
	}
	defer sink.Close()

	ctl := &scriptController{log: log, done: make(chan int, 1)}
	m := machine.New(sink, ctl, machine.WithLogger(log), machine.WithStatus(os.Stdout))

	// A, D, G pressed and released one after another, an octave up, A again, then Escape.
	script := []byte{0x1e, 0x9e, 0x20, 0xa0, 0x22, 0xa2, 0xad, 0x1e, 0x9e, 0x90}
	for _, b := range script {
		m.Feed(b)
		time.Sleep(150 * time.Millisecond)
	}

	select {
	case code := <-ctl.done:
		fmt.Println("Script finished with code", code)
	default:
		// Run drives the same machine from any reader, such as a console.
		_ = m.Run(bytes.NewReader([]byte{0x90}))
	}
}
