package cmd

import (
	"fmt"
	"time"

	"github.com/go-drift/devmenu/cmd/devmenu/internal/config"
	devtest "github.com/go-drift/devmenu/pkg/testing"
	"github.com/go-drift/devmenu/pkg/widgets"
)

// settleTimeout bounds how much simulated time one step may take to settle.
const settleTimeout = 10 * time.Second

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Replay scripted taps and drags",
		Long: `Replay the script from the configuration against a simulated clock.

Each step is one of:
  tap: {x, y}                     tap at a screen position
  drag: {from: {x, y}, to: {x, y}} drag between two screen positions
  wait_ms: N                      advance N milliseconds of frames
  toggle: true                    show or hide the control

After every step the control's dock state, position and size are printed.
Without a script, a tap on the control followed by a drag to the left edge
is replayed.`,
		Usage: "devmenu simulate [--config FILE]",
		Run:   runSimulate,
	})
}

func runSimulate(args []string) error {
	flags, err := parseCommon(args, nil)
	if err != nil {
		return err
	}
	if len(flags.positional) > 0 {
		return fmt.Errorf("unexpected argument %q", flags.positional[0])
	}
	res, err := config.Resolve(flags.configPath)
	if err != nil {
		return err
	}
	if len(res.Script) == 0 {
		res.Script = defaultScript(res.Control)
	}
	_, err = simulate(res, func(line string) {
		fmt.Fprintln(stdout, line)
	})
	return err
}

// simulation is the outcome of replaying a script.
type simulation struct {
	Final       widgets.RenderData
	State       widgets.ControlState
	Activations int
}

// simulate mounts a control for res and replays its script. logf receives
// one line per step.
func simulate(res *config.Resolved, logf func(string)) (simulation, error) {
	var out simulation
	cfg := res.Control
	cfg.OnActivate = func() {
		out.Activations++
		logf("  -> activated")
	}
	control, err := widgets.NewFloatingControl(cfg)
	if err != nil {
		return out, err
	}
	defer control.Dispose()

	driver := devtest.NewPointerDriver(control)
	defer driver.Cleanup()

	st := control.State()
	logf("mount:  " + describe(st.Dock, st.Position, st.Size))

	for i, step := range res.Script {
		switch {
		case step.Tap != nil:
			logf(fmt.Sprintf("step %d: tap (%g, %g)", i+1, step.Tap.X, step.Tap.Y))
			driver.TapAt(step.Tap.Offset())
		case step.Drag != nil:
			from, to := step.Drag.From.Offset(), step.Drag.To.Offset()
			logf(fmt.Sprintf("step %d: drag (%g, %g) -> (%g, %g)", i+1, from.X, from.Y, to.X, to.Y))
			driver.DragFrom(from, to.Sub(from))
		case step.WaitMS > 0:
			logf(fmt.Sprintf("step %d: wait %dms", i+1, step.WaitMS))
			wait := time.Duration(step.WaitMS) * time.Millisecond
			for elapsed := time.Duration(0); elapsed < wait; elapsed += devtest.FrameInterval {
				driver.Pump()
			}
			st := control.State()
			logf("  " + describe(st.Dock, st.Position, st.Size) + " " + st.Phase.String())
			continue
		case step.Toggle:
			visible := control.Toggle()
			logf(fmt.Sprintf("step %d: toggle -> visible=%t", i+1, visible))
		}
		if err := driver.PumpAndSettle(settleTimeout); err != nil {
			return out, fmt.Errorf("step %d: %w", i+1, err)
		}
		st := control.State()
		logf("  " + describe(st.Dock, st.Position, st.Size))
	}

	out.Final = control.Render()
	out.State = control.State()
	return out, nil
}

// defaultScript taps the control at its initial position and then drags it
// to the left edge.
func defaultScript(cfg widgets.ControlConfig) []config.Step {
	center := config.PointSpec{
		X: cfg.InitialPosition.X + cfg.FreeSize.Width/2,
		Y: cfg.InitialPosition.Y + cfg.FreeSize.Height/2,
	}
	return []config.Step{
		{Tap: &center},
		{Drag: &config.DragSpec{
			From: center,
			To:   config.PointSpec{X: cfg.FreeSize.Width / 2, Y: center.Y},
		}},
	}
}
