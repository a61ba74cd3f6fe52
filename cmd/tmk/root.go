package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/leandrodaf/tmk/internal/console"
	"github.com/leandrodaf/tmk/internal/lifecycle"
	"github.com/leandrodaf/tmk/internal/logger"
	"github.com/leandrodaf/tmk/internal/machine"
	"github.com/leandrodaf/tmk/internal/midi/dispatch"
	"github.com/leandrodaf/tmk/sdk/contracts"
	"github.com/leandrodaf/tmk/sdk/midi"
	"github.com/spf13/cobra"
)

type flags struct {
	list      bool
	tty       string
	portName  string
	logLevel  string
	logFile   string
	queueSize int
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "tmk [client:port]",
		Short: "Play MIDI notes from the Linux console keyboard",
		Long: `tmk turns the console keyboard into a MIDI keyboard.

The row a s d f g h j k l ; ' plays the white keys and w e t y u o p the
black ones. z and x move down and up an octave, Tab pauses and resumes, and
q quits.

Notes go to a virtual output port. Give a sequencer address such as 128:0
to connect it to a synthesizer at startup.`,
		Example: `  # Play into FluidSynth on 128:0
  tmk 128:0

  # List the ports tmk can connect to
  tmk --list

  # Play from another virtual console
  tmk --tty /dev/tty2 128:0`,
		Args: validateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	cmd.Flags().BoolVar(&f.list, "list", false, "List MIDI destinations and exit")
	cmd.Flags().StringVar(&f.tty, "tty", "", "Console device to read (default: standard input)")
	cmd.Flags().StringVar(&f.portName, "port-name", midi.DefaultPortName, "Name of the virtual MIDI output port")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Write logs to this file instead of standard error")
	cmd.Flags().IntVar(&f.queueSize, "queue-size", dispatch.DefaultQueueSize, "Note events that may wait for the MIDI driver before new ones are dropped")
	return cmd
}

// validateArgs accepts no argument or a single client:port destination.
func validateArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		if _, err := contracts.ParseDestination(args[0]); err != nil {
			return fmt.Errorf("unknown argument: %s", args[0])
		}
		return nil
	default:
		return errors.New("too many arguments")
	}
}

func sinkOptions(f flags, args []string, log contracts.Logger) ([]contracts.Option, error) {
	level, err := contracts.ParseLogLevel(f.logLevel)
	if err != nil {
		return nil, err
	}
	opts := []contracts.Option{
		contracts.WithLogger(log),
		contracts.WithLogLevel(level),
		contracts.WithPortName(f.portName),
		contracts.WithQueueSize(f.queueSize),
	}
	if f.logFile != "" {
		opts = append(opts, contracts.WithLogFile(f.logFile))
	}
	if len(args) == 1 {
		dest, err := contracts.ParseDestination(args[0])
		if err != nil {
			return nil, err
		}
		opts = append(opts, contracts.WithDestination(dest))
	}
	return opts, nil
}

func run(cmd *cobra.Command, f flags, args []string) error {
	log := logger.NewZapLogger()
	opts, err := sinkOptions(f, args, log)
	if err != nil {
		return err
	}

	if f.list {
		cmd.SilenceUsage = true
		devices, err := midi.ListDestinations(opts...)
		if err != nil {
			return err
		}
		printDestinations(cmd.OutOrStdout(), devices)
		return nil
	}

	sink, err := midi.NewMIDISink(opts...)
	if err != nil {
		return err
	}
	// Past this point failures are not about how tmk was invoked.
	cmd.SilenceUsage = true

	con, err := openConsole(f.tty)
	if err != nil {
		_ = sink.Close()
		log.Error("failed to open console", log.Field().Error("error", err))
		return err
	}

	ctl := lifecycle.New(con, lifecycle.WithLogger(log))
	ctl.OnExit(func() {
		if err := sink.Close(); err != nil {
			log.Warn("failed to close MIDI output", log.Field().Error("error", err))
		}
		_ = con.Close()
	})

	if err := ctl.Acquire(); err != nil {
		_ = sink.Close()
		_ = con.Close()
		log.Error("failed to set up console", log.Field().Error("error", err))
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	stop := ctl.Watch(ctx)
	defer stop()

	m := machine.New(sink, ctl,
		machine.WithLogger(log),
		machine.WithStatus(cmd.OutOrStdout()))
	if err := m.Run(con); err != nil {
		log.Error("keyboard input ended", log.Field().Error("error", err))
		ctl.Terminate(1)
	}
	return nil
}

func openConsole(path string) (*console.Console, error) {
	if path == "" {
		return console.New(os.Stdin)
	}
	return console.Open(path)
}

func printDestinations(w io.Writer, devices []contracts.DeviceInfo) {
	if len(devices) == 0 {
		fmt.Fprintln(w, "No MIDI destinations found")
		return
	}
	for _, d := range devices {
		addr := d.Address
		if addr == "" {
			addr = "-"
		}
		fmt.Fprintf(w, "%-8s %s\n", addr, d.Name)
	}
}
