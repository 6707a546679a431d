package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shulkerscript-lang/shulkerscript-cli/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "shulkerscript",
	Short: "Command-line interface for the shulkerscript language",
	Long: `shulkerscript-cli is the front end for the shulkerscript language,
a scripting language that compiles into Minecraft datapacks.

It scaffolds new projects, migrates existing datapacks into source
projects, builds and packages them through the shulkerscript compiler,
and rebuilds on file changes.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	err := rootCmd.Execute()
	if err != nil {
		deps.Printer.Error("%v", err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("shulkerscript-cli %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().String("log-level", "", "Enable diagnostic logging (debug, info, warn, error)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return setupLogging(getStringFlag(cmd, "log-level"))
	}
}

// setupLogging configures the process-wide slog handler. Without an
// explicit level, diagnostics are suppressed entirely so they never mix
// with command output.
func setupLogging(level string) error {
	var lvl slog.Level
	switch level {
	case "":
		lvl = slog.Level(127)
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("invalid --log-level value %q: must be one of: debug, info, warn, error", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getIntFlag retrieves an int flag value from the command.
func getIntFlag(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0
	}
	return val
}
