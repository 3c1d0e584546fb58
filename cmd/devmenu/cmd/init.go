package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/devmenu/cmd/devmenu/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write a starter configuration",
		Long: `Write a configuration file with every setting spelled out.

The file is created in the current directory as devmenu.yaml, or as
devmenu.toml with --toml. An existing file is left untouched.`,
		Usage: "devmenu init [--toml]",
		Run:   runInit,
	})
}

func runInit(args []string) error {
	name := config.FileName
	for _, arg := range args {
		switch arg {
		case "--toml":
			name = config.TOMLFileName
		default:
			return fmt.Errorf("unknown argument %q", arg)
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	if err := config.WriteFile(path, config.Default()); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s already exists", name)
		}
		return err
	}
	fmt.Fprintf(stdout, "Created %s\n", name)
	return nil
}
