// Build calculator CLI: aggregates equipment builds and manages saved builds.
//
// Usage:
//
//	buildcalc calc build.yaml         # print skills and set bonuses of a build file
//	buildcalc share build.yaml        # print a share code
//	buildcalc decode <code>           # print the build and its skills from a share code
//	buildcalc save build.yaml         # store a build in the database
//	buildcalc load <name>             # print a stored build and its skills
//	buildcalc list                    # list stored builds
//	buildcalc delete <name>           # remove a stored build
//	buildcalc --list                  # list available commands
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/udisondev/mhwbuild/internal/config"
)

const ConfigPath = "config/buildcalc.yaml"

type command struct {
	name  string
	args  string
	desc  string
	nargs int
	run   func(ctx context.Context, app *app, args []string) error
}

var commands []command

func registerCommand(name, args, desc string, nargs int, fn func(ctx context.Context, app *app, args []string) error) {
	commands = append(commands, command{name: name, args: args, desc: desc, nargs: nargs, run: fn})
}

func init() {
	registerCommand("calc", "<build.yaml>", "Aggregate a build file", 1, runCalc)
	registerCommand("share", "<build.yaml>", "Encode a build file into a share code", 1, runShare)
	registerCommand("decode", "<code>", "Decode a share code and aggregate it", 1, runDecode)
	registerCommand("save", "<build.yaml>", "Store a build in the database", 1, runSave)
	registerCommand("load", "<name>", "Load a stored build and aggregate it", 1, runLoad)
	registerCommand("list", "", "List stored builds", 0, runList)
	registerCommand("delete", "<name>", "Delete a stored build", 1, runDelete)
}

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	if args[0] == "--list" {
		printList()
		return
	}

	cmd, ok := findCommand(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printList()
		os.Exit(1)
	}
	if len(args)-1 != cmd.nargs {
		fmt.Fprintf(os.Stderr, "usage: buildcalc %s %s\n", cmd.name, cmd.args)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cmd, args[1:]); err != nil {
		slog.Error("fatal", "command", cmd.name, "err", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd command, args []string) error {
	cfgPath := ConfigPath
	if p := os.Getenv("MHWBUILD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBuildCalc(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded", "path", cfgPath, "catalog_dir", cfg.CatalogDir)

	a := newApp(cfg, os.Stdout)
	defer a.Close()

	return cmd.run(ctx, a, args)
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: buildcalc <command> [args]")
	fmt.Fprintln(os.Stderr, "       buildcalc --list")
}

func printList() {
	sorted := make([]command, len(commands))
	copy(sorted, commands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	maxLen := 0
	for _, c := range sorted {
		maxLen = max(maxLen, len(c.name)+len(c.args)+1)
	}

	fmt.Println("Available commands:")
	for _, c := range sorted {
		usage := strings.TrimSpace(c.name + " " + c.args)
		padding := strings.Repeat(" ", maxLen-len(usage)+2)
		fmt.Printf("  %s%s%s\n", usage, padding, c.desc)
	}
}
