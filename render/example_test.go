package render_test

import (
	"fmt"

	"github.com/cindertui/cinder/render"
)

func Example() {
	buf := render.NewBuffer(80, 24)
	canvas := render.NewCanvas(buf, render.Rect{Width: 80, Height: 24})
	canvas.DrawText(render.Offset{}, "Hello, World!", render.NewStyle())
	fmt.Printf("Size: %dx%d\n", buf.Width(), buf.Height())
	// Output: Size: 80x24
}

func ExampleNewBuffer() {
	buf := render.NewBuffer(10, 5)
	fmt.Printf("Buffer: %v\n", buf != nil)
	// Output: Buffer: true
}
