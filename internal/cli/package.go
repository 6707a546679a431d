package cli

import (
	"github.com/spf13/cobra"
)

var packageCmd = &cobra.Command{
	Use:   "package [PATH]",
	Short: "Build the project and package it into a zip file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		return buildProject(cmd.Context(), path, buildOptions{
			OutputDir:    getStringFlag(cmd, "output"),
			AssetsDir:    getStringFlag(cmd, "assets"),
			Zip:          true,
			SkipValidate: getBoolFlag(cmd, "no-validate"),
		})
	},
}

func init() {
	rootCmd.AddCommand(packageCmd)

	packageCmd.Flags().StringP("output", "o", "", "Directory to place the packaged datapack (env: DATAPACK_DIR)")
	packageCmd.Flags().StringP("assets", "a", "", "Directory copied to the root of the compiled datapack")
	packageCmd.Flags().Bool("no-validate", false, "Skip pack-format compatibility validation")
}
