// Package testing provides test helpers and mock implementations for
// building and driving a binding without a real terminal.
//
// # Overview
//
// Package testing provides tools for testing cinder applications without
// real terminals:
//   - NullBackend (no-op implementation for fast tests)
//   - MockBackend (recording implementation for verification, with a
//     scriptable input stream via Feed)
//   - Call tracking (method name, count, arguments)
//   - Thread-safe operations (concurrent test support)
//   - Drop-in replacements (implement terminal.Backend)
//
// # Quick Start
//
// Testing with NullBackend (fast, no verification):
//
//	import (
//		"testing"
//		ctesting "github.com/cindertui/cinder/testing"
//	)
//
//	func TestRun(t *testing.T) {
//		backend := ctesting.NewNullBackend()
//		b := binding.New(backend)
//		// ... attach a root component and Run ...
//	}
//
// Testing with MockBackend (verification and scripted input):
//
//	func TestBindingEntersAltScreen(t *testing.T) {
//		backend := ctesting.NewMockBackend(terminal.Size{Width: 80, Height: 24})
//		b := binding.New(backend)
//
//		// ... Run the binding in a goroutine, then feed a keypress ...
//		backend.Feed([]byte{0x03}) // Ctrl+C
//
//		if backend.CallCount("EnterAltScreen") != 1 {
//			t.Error("expected EnterAltScreen to be called once")
//		}
//	}
//
// # Use Cases
//
// When to use NullBackend:
//   - Fast unit tests that don't inspect terminal output
//   - Testing component/element logic in isolation from the scheduler
//
// When to use MockBackend:
//   - Verify the binding enters/exits raw mode and the alternate screen
//     in the right order
//   - Script an input byte sequence and assert on the resulting frame
//   - Inspect emitted ANSI bytes via Written()
package testing
