package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shulkerscript-lang/shulkerscript-cli/internal/compiler"
	"github.com/shulkerscript-lang/shulkerscript-cli/internal/config"
)

var buildCmd = &cobra.Command{
	Use:   "build [PATH]",
	Short: "Build the project",
	Long: `Compile the project at PATH (default: current directory) into a
datapack under the dist directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		return buildProject(cmd.Context(), path, buildOptions{
			OutputDir:    getStringFlag(cmd, "output"),
			AssetsDir:    getStringFlag(cmd, "assets"),
			Zip:          getBoolFlag(cmd, "zip"),
			SkipValidate: getBoolFlag(cmd, "no-validate"),
			CheckOnly:    getBoolFlag(cmd, "check"),
		})
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "o", "", "Directory to place the compiled datapack (env: DATAPACK_DIR)")
	buildCmd.Flags().StringP("assets", "a", "", "Directory copied to the root of the compiled datapack")
	buildCmd.Flags().BoolP("zip", "z", false, "Package the compiled datapack into a zip file")
	buildCmd.Flags().Bool("no-validate", false, "Skip pack-format compatibility validation")
	buildCmd.Flags().Bool("check", false, "Check that the project builds without producing output")
}

// buildOptions are the resolved flags of a build or package run.
type buildOptions struct {
	OutputDir    string
	AssetsDir    string
	Zip          bool
	SkipValidate bool
	CheckOnly    bool
}

// buildProject compiles the project at path through the external
// compiler collaborator and optionally packages the result.
func buildProject(ctx context.Context, path string, opts buildOptions) error {
	manifest, manifestPath, err := config.Load(path)
	if err != nil {
		return err
	}
	projectRoot := filepath.Dir(manifestPath)

	distDir := opts.OutputDir
	if distDir == "" {
		distDir = os.Getenv("DATAPACK_DIR")
	}
	if distDir == "" {
		distDir = filepath.Join(projectRoot, "dist")
	}
	outputRoot := filepath.Join(distDir, manifest.Pack.Name)

	assets := opts.AssetsDir
	if assets == "" && manifest.Compiler != nil && manifest.Compiler.Assets != "" {
		assets = filepath.Join(projectRoot, manifest.Compiler.Assets)
	}

	action := "Building"
	if opts.Zip {
		action = "Building and packaging"
	}
	deps.Printer.Info("%s project at %s", action, projectRoot)

	spin := deps.Progress.Spinner("Compiling " + manifest.Pack.Name)
	output, err := deps.Compiler.Compile(ctx, projectRoot, compiler.Options{
		PackFormat:   manifest.Pack.PackFormat,
		OutputDir:    outputRoot,
		AssetsDir:    assets,
		SkipValidate: opts.SkipValidate,
		CheckOnly:    opts.CheckOnly,
	})
	spin.Stop()
	if err != nil {
		return err
	}

	if opts.CheckOnly {
		deps.Printer.Success("Project is valid and can be built.")
		return nil
	}

	if opts.Zip {
		zipPath := outputRoot + ".zip"
		comment := fmt.Sprintf("%s - v%s", manifest.Pack.Description, manifest.Pack.Version)
		if err := zipTree(output.Root, zipPath, comment); err != nil {
			return err
		}
		deps.Printer.Success("Finished packaging project to %s", zipPath)
		return nil
	}

	deps.Printer.Success("Finished building project to %s", output.Root)
	return nil
}
