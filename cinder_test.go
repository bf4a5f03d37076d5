//go:build unix || darwin

package cinder_test

import (
	"testing"

	"github.com/cindertui/cinder"
	"github.com/cindertui/cinder/widgets"
)

func TestNewAppReturnsRunnableApp(t *testing.T) {
	app := cinder.NewApp(widgets.Text{Content: "hello"})
	if app == nil {
		t.Fatal("NewApp() returned nil")
	}
}

func TestDetectCapabilities(t *testing.T) {
	caps := cinder.DetectCapabilities()
	if caps.ColorDepth < 0 {
		t.Errorf("DetectCapabilities() = %+v, want non-negative ColorDepth", caps)
	}
}
