// Package testing provides helpers for testing the floating control without
// a real frame loop or touch screen.
//
// # Quick Start
//
// Install a fake clock, mount the control and drive it with pointers:
//
//	func TestDock(t *testing.T) {
//	    driver := devtest.NewPointerDriverWithT(t, control)
//
//	    driver.DragFrom(rendering.Offset{X: 30, Y: 320}, rendering.Offset{X: -25, Y: 0})
//	    if err := driver.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	driver.Clock().Advance(100 * time.Millisecond)
//	driver.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import devtest "github.com/go-drift/devmenu/pkg/testing"
package testing
