package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shulkerscript-lang/shulkerscript-cli/internal/config"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [PATH]",
	Short: "Clean build artifacts",
	Long:  `Remove the dist directory of the project at PATH (default: current directory).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		manifestPath, err := config.ResolveManifestPath(path)
		if err != nil {
			return err
		}
		distPath := filepath.Join(filepath.Dir(manifestPath), "dist")

		deps.Printer.Info("Cleaning project at %s", filepath.Dir(manifestPath))
		if err := os.RemoveAll(distPath); err != nil {
			return err
		}
		deps.Printer.Success("Project cleaned successfully.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
