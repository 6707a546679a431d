package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shulkerscript-lang/shulkerscript-cli/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [PATH] [TARGET]",
	Short: "Migrate a regular datapack to a shulkerscript project",
	Long: `Migrate a hand-authored datapack into a shulkerscript source project.

Functions become source files under src/<namespace>/, function tags are
merged into one declarative import file per namespace, and pack.mcmeta
seeds the new project manifest.

PATH defaults to the current directory. TARGET defaults to a sibling
directory named after the datapack with a "-shulkerscript" suffix.
Pre-existing non-empty files at the target are preserved unless --force
is given.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().BoolP("force", "f", false, "Overwrite pre-existing non-empty destination files")
	migrateCmd.Flags().StringP("name", "n", "", "Project name (default: datapack directory name)")
	migrateCmd.Flags().StringP("description", "d", "", "Project description (default: taken from pack.mcmeta)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	var target string
	if len(args) > 1 {
		target = args[1]
	} else {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		target = abs + "-shulkerscript"
	}

	opts := migrate.Options{
		Name:        getStringFlag(cmd, "name"),
		Description: getStringFlag(cmd, "description"),
		Force:       getBoolFlag(cmd, "force"),
	}

	deps.Printer.Info("Migrating datapack at %s to %s", path, target)

	inv, err := migrate.Scan(path)
	if err != nil {
		return err
	}

	plan, err := migrate.BuildPlan(inv, opts)
	if err != nil {
		return err
	}

	bar := deps.Progress.Bar("Writing migrated files", len(plan.Entries)+1)
	writer := &migrate.Writer{
		Force:    opts.Force,
		Progress: func(string) { bar.Increment(1) },
	}
	wr, writeErr := writer.Execute(plan, target)
	bar.Done()

	report := migrate.BuildReport(inv, plan, wr)
	for _, warning := range report.Warnings {
		deps.Printer.Warning("%s", warning)
	}
	report.Print(deps.Printer.Out)

	if writeErr != nil {
		// Prior writes are kept; the report above lists them.
		return writeErr
	}

	deps.Printer.Success("Migration finished.")
	return nil
}
