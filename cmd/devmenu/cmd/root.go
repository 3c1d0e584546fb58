// Package cmd implements the devmenu CLI commands.
//
// The root command dispatches to subcommands (resolve, simulate, render).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/devmenu/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "devmenu",
	Short: "devmenu - draggable developer menu trigger",
	Long: `devmenu drives the floating developer-menu control without a host UI.
It resolves where a release docks, replays scripted taps and drags
against a simulated clock, and renders the resting control to PNG.

Configuration is read from devmenu.yaml in the working directory, or
from the file given with --config.

Use "devmenu <command> --help" for more information about a command.`,
	Usage: "devmenu <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout receives command output.
var stdout io.Writer = os.Stdout

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	var filteredArgs []string
	var logger errors.LogHandler
	logFlags := false
	for _, arg := range args {
		if ops, ok := strings.CutPrefix(arg, "--log="); ok {
			logger.Ops = append(logger.Ops, strings.Split(ops, ",")...)
			logFlags = true
			continue
		}
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "devmenu version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			logger.Verbose = true
			logFlags = true
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs
	if logFlags {
		errors.SetHandler(&logger)
	}

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// commonFlags holds flags shared by every subcommand.
type commonFlags struct {
	configPath string
	positional []string
}

// parseCommon extracts --config and returns the remaining arguments.
// extra is consulted for subcommand flags that take a value; it returns
// true when it consumed the flag.
func parseCommon(args []string, extra func(flag, value string) (bool, error)) (commonFlags, error) {
	var f commonFlags
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		if !strings.HasPrefix(name, "-") || isNumber(arg) {
			f.positional = append(f.positional, arg)
			continue
		}
		if !hasValue {
			if i+1 >= len(args) {
				return f, fmt.Errorf("%s requires a value", name)
			}
			value = args[i+1]
			i++
		}
		if name == "--config" || name == "-c" {
			f.configPath = value
			continue
		}
		if extra != nil {
			ok, err := extra(name, value)
			if err != nil {
				return f, err
			}
			if ok {
				continue
			}
		}
		return f, fmt.Errorf("unknown flag %s", name)
	}
	return f, nil
}

func isNumber(s string) bool {
	_, err := parseFloat(s)
	return err == nil
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  -c, --config FILE    Read configuration from FILE (default: ./devmenu.yaml)")
	fmt.Fprintln(stdout, "  --verbose            Log errors with stack traces")
	fmt.Fprintln(stdout, "  --log=OPS            Only log errors from these comma-separated op prefixes")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  devmenu resolve 10 300        Where a release at (10,300) comes to rest")
	fmt.Fprintln(stdout, "  devmenu simulate              Replay the configured script")
	fmt.Fprintln(stdout, "  devmenu render -o menu.png    Render the control after the script")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
