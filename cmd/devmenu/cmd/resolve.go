package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/devmenu/cmd/devmenu/internal/config"
	"github.com/go-drift/devmenu/pkg/dock"
	"github.com/go-drift/devmenu/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "resolve",
		Short: "Show where a release comes to rest",
		Long: `Resolve a release position against the configured screen.

X and Y are the top-left corner of the free-sized control at the moment the
pointer lifts. The output is the dock state, resting position and size.
Edges are checked in the order left, right, top, bottom; the first edge
closer than the threshold wins.`,
		Usage: "devmenu resolve <x> <y> [--config FILE]",
		Run:   runResolve,
	})
}

func runResolve(args []string) error {
	flags, err := parseCommon(args, nil)
	if err != nil {
		return err
	}
	if len(flags.positional) != 2 {
		return fmt.Errorf("resolve requires <x> and <y>")
	}
	x, err := parseFloat(flags.positional[0])
	if err != nil {
		return fmt.Errorf("invalid x %q: %w", flags.positional[0], err)
	}
	y, err := parseFloat(flags.positional[1])
	if err != nil {
		return fmt.Errorf("invalid y %q: %w", flags.positional[1], err)
	}

	res, err := config.Resolve(flags.configPath)
	if err != nil {
		return err
	}
	result := dock.Resolve(res.Control.Request(rendering.Offset{X: x, Y: y}))
	fmt.Fprintln(stdout, describe(result.State, result.Position, result.Size))
	return nil
}

func describe(state dock.State, pos rendering.Offset, size rendering.Size) string {
	return fmt.Sprintf("%-13s at (%g, %g) size %gx%g", state, pos.X, pos.Y, size.Width, size.Height)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
