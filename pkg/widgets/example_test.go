package widgets_test

import (
	"fmt"

	"github.com/muv-academia/muv/pkg/animation"
	"github.com/muv-academia/muv/pkg/content"
	muvtest "github.com/muv-academia/muv/pkg/testing"
	"github.com/muv-academia/muv/pkg/visibility"
	"github.com/muv-academia/muv/pkg/widgets"
)

// This example mounts a badge and scrolls it into view.
func ExampleCounter() {
	clk := muvtest.NewFakeClock()
	sched := animation.NewFrameScheduler(clk)
	viewport := visibility.NewViewport(visibility.Rect{W: 80, H: 20})

	counter, err := widgets.NewCounter(widgets.AnimatedCounter{
		Target:  100,
		Caption: "Crianças atendidas",
	}, viewport, sched)
	if err != nil {
		panic(err)
	}
	defer counter.Unmount()

	counter.Mount(visibility.RegionFunc(func() visibility.Rect {
		return visibility.Rect{Y: 50, W: 80, H: 2}
	}))
	fmt.Println(counter.Label(), counter.Status())

	viewport.SetBounds(visibility.Rect{Y: 40, W: 80, H: 20})
	clk.AdvanceFrames(sched, animation.TickInterval, 75)
	fmt.Println(counter.Label(), counter.Status())
	// Output:
	// 0+ idle
	// 100+ complete
}

// This example opens the menu and jumps to a section.
func ExampleNavMenu() {
	menu := widgets.NewNavMenu(content.Default().Nav)

	menu.Toggle()
	anchor, _ := menu.Select(1)
	fmt.Println(anchor, menu.IsOpen())
	// Output:
	// soma false
}
