//go:build unix || darwin

// Package cinder is the umbrella entry point for the Cinder terminal UI
// toolkit: a retained-mode component tree (ui), a small widget library
// (widgets), a cell-grid renderer (render), raw-mode/ANSI terminal I/O
// (terminal), and the scheduler that wires them together into a running
// event loop (binding).
//
// Most programs only need this package and widgets:
//
//	package main
//
//	import (
//		"context"
//		"os"
//
//		"github.com/cindertui/cinder"
//		"github.com/cindertui/cinder/widgets"
//	)
//
//	func main() {
//		app := cinder.NewApp(widgets.Text{Content: "hello, terminal"})
//		if err := app.Run(context.Background()); err != nil {
//			os.Exit(1)
//		}
//	}
//
// Package cinder itself is a thin convenience layer: DetectCapabilities and NewApp
// just call through to terminal and binding. Programs that need finer
// control (a custom terminal.Backend, non-default binding.Options) should
// construct those packages directly instead of going through here.
package cinder

import (
	"context"
	"os"

	"github.com/cindertui/cinder/binding"
	"github.com/cindertui/cinder/terminal"
	"github.com/cindertui/cinder/ui"
)

// App is a running Cinder program: one binding.Binding over an
// auto-detected terminal.Backend, driving a single root component.
type App struct {
	binding *binding.Binding
}

// NewApp constructs an App rooted at root, talking to the process's
// stdin/stdout over the platform's ANSI backend. opts customize the
// underlying binding (frame interval, logger, alt-screen, and so on);
// see the binding package for the full option set.
func NewApp(root ui.Component, opts ...binding.Option) *App {
	b := binding.New(terminal.NewANSIBackend(os.Stdin, os.Stdout), opts...)
	b.AttachRoot(root)
	return &App{binding: b}
}

// Run starts the event loop and blocks until ctx is cancelled, the
// terminal sends EOF, or the user presses a shutdown key (Ctrl+C or Escape).
// It restores the terminal to its original mode before returning,
// regardless of how it exits.
func (a *App) Run(ctx context.Context) error {
	return a.binding.Run(ctx)
}

// Shutdown requests the event loop stop at the next opportunity. Run
// returns once the current frame finishes; safe to call from any
// goroutine, including from within a widget's event handling.
func (a *App) Shutdown() {
	a.binding.Shutdown()
}

// DetectCapabilities reports what the current terminal is believed to
// support, inspecting the environment the way binding.New does
// internally. Exported so a caller can decide on a color palette before
// constructing its component tree.
func DetectCapabilities() terminal.Capabilities {
	return terminal.DetectCapabilities()
}
