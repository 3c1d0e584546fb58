package cmd

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"github.com/go-drift/devmenu/cmd/devmenu/internal/config"
	"github.com/go-drift/devmenu/pkg/snapshot"
)

// pipeName selects stdout as the render destination.
const pipeName = "-"

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the control to PNG",
		Long: `Render the control to a PNG image the size of the configured screen.

The configured script is replayed first, so the image shows where the
control came to rest. Docked controls on the left or right edge draw a grip
line; all other shapes draw the "MENU" label.

Flags:
  -o, --output FILE   Destination file, or "-" for a pipe (default: devmenu.png)
  --scale N           Resize the image by N, e.g. 0.5 for a thumbnail`,
		Usage: "devmenu render [--config FILE] [-o FILE] [--scale N]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	output := "devmenu.png"
	scale := 1.0
	flags, err := parseCommon(args, func(flag, value string) (bool, error) {
		switch flag {
		case "-o", "--output":
			output = value
			return true, nil
		case "--scale":
			v, err := parseFloat(value)
			if err != nil || v <= 0 {
				return false, fmt.Errorf("invalid --scale %q: must be a positive number", value)
			}
			scale = v
			return true, nil
		}
		return false, nil
	})
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

	sim, err := simulate(res, func(string) {})
	if err != nil {
		return err
	}

	var img image.Image = snapshot.Render(sim.Final, res.Control.ScreenBounds, snapshot.DefaultStyle)
	if scale != 1 {
		b := img.Bounds()
		w := max(1, int(float64(b.Dx())*scale))
		img = imaging.Resize(img, w, 0, imaging.Lanczos)
	}

	if output == pipeName {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return fmt.Errorf("`-` should be used with a pipe for stdout")
		}
		return snapshot.Encode(stdout, img)
	}
	if err := snapshot.WriteFile(output, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintf(stdout, "Wrote %s (%s)\n", output, describe(sim.State.Dock, sim.State.Position, sim.State.Size))
	return nil
}
