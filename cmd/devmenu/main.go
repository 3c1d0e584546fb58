// Command devmenu exercises the floating developer-menu control from the
// command line: resolving dock positions, replaying scripted gestures and
// rendering the result to PNG.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/devmenu/cmd/devmenu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
