package contracts

// MIDICommand represents the MIDI status commands the keyboard emits.
type MIDICommand byte

const (
	// NoteOn is the MIDI command for a Note On event (0x90).
	NoteOn MIDICommand = 0x90
	// NoteOff is the MIDI command for a Note Off event (0x80).
	NoteOff MIDICommand = 0x80
)

// ClientOptions defines the configuration options for the MIDI sink.
type ClientOptions struct {
	Logger      Logger       // Logger for logging events and errors.
	LogLevel    LogLevel     // Level of logging to use.
	LogFilePath string       // File path for logging; empty keeps the console.
	PortName    string       // Name of the virtual output port.
	Destination *Destination // Optional destination connected at startup.
	QueueSize   int          // Capacity of the fire-and-forget event queue.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the MIDI sink.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithLogFile sends log output to path instead of the console.
func WithLogFile(path string) Option {
	return func(opts *ClientOptions) {
		opts.LogFilePath = path
	}
}

// WithPortName sets the name of the virtual output port.
func WithPortName(name string) Option {
	return func(opts *ClientOptions) {
		opts.PortName = name
	}
}

// WithDestination connects the sink to dest at startup.
func WithDestination(dest Destination) Option {
	return func(opts *ClientOptions) {
		opts.Destination = &dest
	}
}

// WithQueueSize sets how many events may wait for delivery before new ones are dropped.
func WithQueueSize(n int) Option {
	return func(opts *ClientOptions) {
		opts.QueueSize = n
	}
}
