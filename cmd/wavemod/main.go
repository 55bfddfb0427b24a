// Command wavemod runs the example Wave module standalone: it registers the
// module the way the host agent would, feeds it a query, and prints the
// response envelope as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/wavemaster/wavemod/config"
	"github.com/wavemaster/wavemod/examplemodule"
	"github.com/wavemaster/wavemod/history"
	"github.com/wavemaster/wavemod/hostapi"
	"github.com/wavemaster/wavemod/internal/version"
	"github.com/wavemaster/wavemod/workspace"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to YAML config file")
		contextJSON = flag.String("context", "", "inline JSON context from other modules")
	)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	app := &App{cfg: cfg, logger: logger}

	cmd := args[0]
	rest := args[1:]

	var err error
	switch cmd {
	case "version":
		err = cmdVersion(rest)
	case "query":
		err = app.cmdQuery(rest, *contextJSON)
	case "capabilities":
		err = app.cmdCapabilities(rest)
	case "history":
		err = app.cmdHistory(rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `wavemod — example Wave agent module

Usage:
  wavemod [flags] <command> [args]

Flags:
  --config  <path>  YAML config file (default: built-in defaults)
  --context <json>  inline JSON context from other modules

Commands:
  version               print version
  capabilities          print the module capability descriptor
  query <query...>      process a query, e.g. "save: notes.txt:hello"
  history [operation]   list recorded invocations, optionally by operation
`)
}

// --- version ---

func cmdVersion(_ []string) error {
	fmt.Printf("wavemod %s (commit %s, built %s)\n",
		version.Version, version.Commit, version.BuildDate)
	return nil
}

// App holds resolved configuration for CLI commands.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

// buildRegistry constructs the example module and registers it the way the
// host would. The returned cleanup closes the history store.
func (a *App) buildRegistry() (*hostapi.Registry, func(), error) {
	mod := examplemodule.New(workspace.New(a.cfg.StorageRoot), a.logger)

	cleanup := func() {}
	if a.cfg.History.Enabled {
		if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data dir: %w", err)
		}
		store, err := history.NewStore(a.cfg.HistoryPath())
		if err != nil {
			return nil, nil, fmt.Errorf("open history: %w", err)
		}
		mod.SetHistory(store)
		cleanup = func() { _ = store.Close() }
	}

	registry := hostapi.NewRegistry()
	if err := registry.Register(mod); err != nil {
		cleanup()
		return nil, nil, err
	}
	return registry, cleanup, nil
}

// --- query ---

func (a *App) cmdQuery(args []string, contextJSON string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: wavemod query <query>")
	}
	query := strings.Join(args, " ")

	reg, cleanup, err := a.buildRegistry()
	if err != nil {
		return err
	}
	defer cleanup()

	// Route on the operation prefix; the module re-parses the full query
	// itself. An unclaimed operation still goes to a module so the caller
	// gets a module-shaped error envelope rather than a CLI error.
	mod, ok := reg.FindByOperation(routeOperation(query))
	if !ok {
		mods := reg.List()
		if len(mods) == 0 {
			return fmt.Errorf("no modules registered")
		}
		mod = mods[0]
	}

	hostCtx := reg.ContextFor(mod.Name())
	if contextJSON != "" {
		if err := json.Unmarshal([]byte(contextJSON), &hostCtx); err != nil {
			return fmt.Errorf("parse context: %w", err)
		}
	}

	resp := mod.Process(context.Background(), query, hostCtx)
	reg.RecordOutput(mod.Name(), resp)
	return printJSON(resp)
}

// routeOperation extracts the operation prefix from an "operation: content"
// query. Queries without a prefix route to process.
func routeOperation(query string) string {
	if op, _, ok := strings.Cut(query, ":"); ok {
		return strings.ToLower(strings.TrimSpace(op))
	}
	return "process"
}

// --- capabilities ---

func (a *App) cmdCapabilities(_ []string) error {
	reg, cleanup, err := a.buildRegistry()
	if err != nil {
		return err
	}
	defer cleanup()

	caps := map[string]hostapi.Capabilities{}
	for _, mod := range reg.List() {
		caps[mod.Name()] = mod.Capabilities()
	}
	return printJSON(caps)
}

// --- history ---

func (a *App) cmdHistory(args []string) error {
	if !a.cfg.History.Enabled {
		return fmt.Errorf("history is disabled in config")
	}
	store, err := history.NewStore(a.cfg.HistoryPath())
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close() //nolint:errcheck

	filter := history.Filter{Limit: 50}
	if len(args) > 0 {
		filter.Operation = args[0]
	}
	invs, err := store.List(filter)
	if err != nil {
		return err
	}
	if len(invs) == 0 {
		fmt.Println("no invocations")
		return nil
	}
	fmt.Printf("%-36s %-10s %-8s %-19s %s\n", "ID", "OPERATION", "STATUS", "CREATED", "QUERY")
	fmt.Println(strings.Repeat("-", 100))
	for _, inv := range invs {
		fmt.Printf("%-36s %-10s %-8s %-19s %s\n",
			inv.ID, inv.Operation, inv.Status,
			inv.CreatedAt.Format("2006-01-02 15:04:05"),
			truncate(inv.Query, 30),
		)
	}
	return nil
}

// --- helpers ---

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
