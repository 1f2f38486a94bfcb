// Package cmd implements the nocturne CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (run, info).
package cmd

import (
	"fmt"
	"os"
)

// Version information set at build time.
var (
	Version   = "v0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "nocturne",
	Short: "Nocturne - a snowy night, rendered one tick at a time",
	Long: `Nocturne simulates one virtual night (20:00 to 06:00) as a sequence
of discrete ticks and renders each derived scene snapshot: clock,
stars, snowfall, sky color, and timed messages.

Use "nocturne <command> --help" for more information about a command.`,
	Usage: "nocturne <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var commands = make(map[string]*Command)
var commandOrder []*Command

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	commandOrder = append(commandOrder, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(rootCmd)
		return nil
	case "-v", "--version", "version":
		fmt.Printf("Nocturne version %s (built %s)\n", Version, BuildTime)
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

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range commandOrder {
		fmt.Printf("  %-10s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help       Show help for a command")
	fmt.Println("  -v, --version    Show version information")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  nocturne run              Render the night using ./nocturne.yaml")
	fmt.Println("  nocturne run path/to/dir  Render using dir/nocturne.yaml")
	fmt.Println("  nocturne info             Show the resolved night schedule")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
