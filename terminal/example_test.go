//go:build unix || darwin

package terminal_test

import (
	"fmt"
	"os"

	"github.com/cindertui/cinder/terminal"
)

func Example() {
	backend := terminal.NewANSIBackend(os.Stdin, os.Stdout)
	fmt.Printf("Backend: %v\n", backend != nil)
	// Output: Backend: true
}
