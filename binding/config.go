// Package binding is the TerminalBinding: the scheduler that drives one
// component tree against one terminal, running the build→layout→paint→emit
// pipeline once per coalesced frame and routing input events into it.
package binding

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/cindertui/cinder/terminal"
)

// defaultFrameInterval is the wall-clock ceiling spec.md §4.7/§5 places on
// the event loop's idle wait: frames are never drawn faster than this (a
// request arriving sooner is drawn on the next tick), but nothing forces
// one to be drawn at all absent a dirty mark.
const defaultFrameInterval = 16 * time.Millisecond

// defaultPollInterval is the resize-poll fallback used when no OS resize
// signal (SIGWINCH) is available.
const defaultPollInterval = 1 * time.Second

// Trace carries the frame/phase context an ErrorHandler receives alongside
// an error, so a caller's error sink can log or report with enough context
// to reproduce the failure without the binding forcing a stack trace.
type Trace struct {
	Frame uint64
	Phase string
}

// ErrorHandler receives I/O and internal errors the binding would
// otherwise have nowhere to report (spec.md §9's "zone-like uncaught
// error interception"). It must not block or panic.
type ErrorHandler func(err error, trace Trace)

// Config configures a Binding. The zero Config is valid: it defaults
// Output/Input to stdio, FrameInterval/PollInterval to the spec defaults,
// and discards log output until a Logger is set.
type Config struct {
	// Output and Input record which streams the binding was configured
	// against (for callers constructing their own terminal.Backend around
	// them); New itself reads and writes exclusively through the Backend
	// passed to it, not through these fields directly.
	Output io.Writer
	Input  io.Reader

	// Logger receives structured warnings from terminal setup (raw mode,
	// cursor hiding, and size-query failures). Layout, paint, and read or
	// emit errors are not logged; read and emit errors go to ErrorSink.
	// Defaults to a logger writing to io.Discard so an embedded app stays
	// silent unless it opts in via WithLogger.
	Logger *zerolog.Logger

	// ErrorSink receives errors the binding cannot otherwise surface.
	// Defaults to a no-op.
	ErrorSink ErrorHandler

	// FrameInterval bounds the idle wait between event-loop turns.
	FrameInterval time.Duration
	// PollInterval is the resize-poll fallback period.
	PollInterval time.Duration

	// AltScreen selects the alternate screen buffer during initialize.
	// Defaults to true; set false for inline/non-alt-screen embedding.
	AltScreen bool

	// Capabilities records what the target terminal is believed to
	// support, detected from the environment. Defaults to
	// terminal.DetectCapabilities(); widgets can read it back through
	// BuildContext to decide whether to reach for a truecolor style.
	Capabilities terminal.Capabilities
}

// Option mutates a Config; passed to New.
type Option func(*Config)

// WithOutput sets the binding's output stream.
func WithOutput(w io.Writer) Option { return func(c *Config) { c.Output = w } }

// WithInput sets the binding's input stream.
func WithInput(r io.Reader) Option { return func(c *Config) { c.Input = r } }

// WithLogger installs a structured logger for diagnostics.
func WithLogger(logger *zerolog.Logger) Option { return func(c *Config) { c.Logger = logger } }

// WithErrorSink installs a handler for errors the binding cannot
// otherwise surface.
func WithErrorSink(sink ErrorHandler) Option { return func(c *Config) { c.ErrorSink = sink } }

// WithFrameInterval overrides the idle-wait ceiling between frames.
func WithFrameInterval(d time.Duration) Option { return func(c *Config) { c.FrameInterval = d } }

// WithPollInterval overrides the resize-poll fallback period.
func WithPollInterval(d time.Duration) Option { return func(c *Config) { c.PollInterval = d } }

// WithoutAltScreen renders inline instead of switching to the alternate
// screen buffer.
func WithoutAltScreen() Option { return func(c *Config) { c.AltScreen = false } }

// WithCapabilities overrides the detected terminal capabilities, useful
// when a caller already knows them (e.g. from a prior probe) or wants to
// force a color depth for testing.
func WithCapabilities(caps terminal.Capabilities) Option {
	return func(c *Config) { c.Capabilities = caps }
}

func defaultConfig() Config {
	discard := zerolog.New(io.Discard)
	return Config{
		Output:        os.Stdout,
		Input:         os.Stdin,
		Logger:        &discard,
		ErrorSink:     func(error, Trace) {},
		FrameInterval: defaultFrameInterval,
		PollInterval:  defaultPollInterval,
		AltScreen:     true,
		Capabilities:  terminal.DetectCapabilities(),
	}
}

func resolveConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Logger == nil {
		discard := zerolog.New(io.Discard)
		cfg.Logger = &discard
	}
	if cfg.ErrorSink == nil {
		cfg.ErrorSink = func(error, Trace) {}
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = defaultFrameInterval
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	return cfg
}
