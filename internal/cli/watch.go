package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shulkerscript-lang/shulkerscript-cli/internal/config"
	"github.com/shulkerscript-lang/shulkerscript-cli/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [build|package]",
	Short: "Watch for changes and rebuild the project",
	Long: `Watch the project's source files and run the given action (default:
build) whenever changes settle. Bursts of change notifications are
coalesced by a debounce window, and no two action runs ever overlap:
changes arriving during a run trigger exactly one follow-up run.

Runs until interrupted with Ctrl-C.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []cobra.Completion{"build", "package"},
	RunE:      runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("path", "p", ".", "Path of the project to watch")
	watchCmd.Flags().Bool("no-initial", false, "Only run after changes are detected, skipping the initial run")
	watchCmd.Flags().Int("debounce-time", 2000, "Time in ms to wait after a change before running the action")
	watchCmd.Flags().StringArrayP("watch", "w", nil, "Additional paths to watch for changes")
}

func runWatch(cmd *cobra.Command, args []string) error {
	subcommand := "build"
	if len(args) > 0 {
		subcommand = args[0]
	}
	if subcommand != "build" && subcommand != "package" {
		return fmt.Errorf("invalid watch action %q: must be build or package", subcommand)
	}

	path := getStringFlag(cmd, "path")
	manifest, manifestPath, err := config.Load(path)
	if err != nil {
		return err
	}
	projectRoot := filepath.Dir(manifestPath)

	action := func(ctx context.Context) error {
		deps.Printer.Info("Running %s...", subcommand)
		return buildProject(ctx, projectRoot, buildOptions{Zip: subcommand == "package"})
	}

	debounce := time.Duration(getIntFlag(cmd, "debounce-time")) * time.Millisecond
	orch := watch.NewOrchestrator(action, debounce)
	orch.RunOnStart = !getBoolFlag(cmd, "no-initial")
	orch.OnError = func(err error) {
		// Action failures are non-fatal; keep watching.
		deps.Printer.Error("%v", err)
	}

	watcher, err := watch.NewWatcher(orch)
	if err != nil {
		return err
	}
	for _, p := range watchPaths(projectRoot, manifest, getStringArrayFlag(cmd, "watch")) {
		if err := watcher.Add(p); err != nil {
			deps.Printer.Warning("Cannot watch %s: %v", p, err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps.Printer.Info("Watching project at %s", projectRoot)
	deps.Printer.Info("Press Ctrl-C to stop watching")

	go func() {
		_ = watcher.Run(ctx)
	}()

	if err := orch.Run(ctx); err != nil {
		return err
	}
	deps.Printer.Info("Stopped watching.")
	return nil
}

// watchPaths collects the paths watched for a project: the src tree, the
// manifest, the pack icon, the configured assets directory, and any
// explicitly requested extras. Paths that do not exist are dropped.
func watchPaths(projectRoot string, manifest *config.ProjectManifest, extra []string) []string {
	paths := []string{
		filepath.Join(projectRoot, "src"),
		filepath.Join(projectRoot, config.ManifestFileName),
		filepath.Join(projectRoot, "pack.png"),
	}
	if manifest.Compiler != nil && manifest.Compiler.Assets != "" {
		paths = append(paths, filepath.Join(projectRoot, manifest.Compiler.Assets))
	}
	paths = append(paths, extra...)

	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	return existing
}

// getStringArrayFlag retrieves a string-array flag value from the command.
func getStringArrayFlag(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringArray(name)
	if err != nil {
		return nil
	}
	return val
}
