package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/shulkerscript-lang/shulkerscript-cli/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Initialize a new shulkerscript project",
	Long: `Initialize a new shulkerscript project in PATH (default: current
directory). Prompts for missing values unless --batch is given or stdin
is not a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringP("name", "n", "", "Name of the project (default: directory name)")
	initCmd.Flags().StringP("description", "d", "", "Description of the project")
	initCmd.Flags().Int("pack-format", 0, "Pack format version")
	initCmd.Flags().String("icon", "", "Path of an icon file copied to pack.png")
	initCmd.Flags().BoolP("force", "f", false, "Initialize even if the directory is not empty")
	initCmd.Flags().Bool("batch", false, "Skip prompts and use flags and defaults")
	initCmd.Flags().String("vcs", "git", "Version control system to initialize (git, none)")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	force := getBoolFlag(cmd, "force")

	vcs := getStringFlag(cmd, "vcs")
	if vcs != "git" && vcs != "none" {
		return fmt.Errorf("invalid --vcs value %q: must be git or none", vcs)
	}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(path, 0o755); err != nil {
			return err
		}
	case err != nil:
		return err
	case !info.IsDir():
		return fmt.Errorf("%w: %s", config.ErrNotDirectory, path)
	default:
		if !force {
			entries, err := os.ReadDir(path)
			if err != nil {
				return err
			}
			if len(entries) > 0 {
				return fmt.Errorf("%w: %s (use --force to initialize anyway)", config.ErrNonEmptyDirectory, path)
			}
		}
	}

	pack := config.DefaultPackConfig()
	if abs, err := filepath.Abs(path); err == nil {
		pack.Name = filepath.Base(abs)
	}
	if v := getStringFlag(cmd, "name"); v != "" {
		pack.Name = v
	}
	if v := getStringFlag(cmd, "description"); v != "" {
		pack.Description = v
	}
	if v := getIntFlag(cmd, "pack-format"); v > 0 {
		pack.PackFormat = v
	}

	if !getBoolFlag(cmd, "batch") && !deps.Headless.IsHeadless() {
		if err := promptPackConfig(&pack); err != nil {
			return err
		}
	}

	deps.Printer.Info("Initializing a new shulkerscript project...")

	manifest := config.NewProjectManifest(pack)
	if err := config.Save(manifest, filepath.Join(path, config.ManifestFileName)); err != nil {
		return err
	}

	namespace := strings.ToLower(config.SanitizeName(pack.Name))
	if err := os.MkdirAll(filepath.Join(path, "src"), 0o755); err != nil {
		return err
	}
	main := fmt.Sprintf("namespace %q;\n\n#[load]\nfn load() {\n    say Loaded %s!\n}\n", namespace, pack.Name)
	if err := os.WriteFile(filepath.Join(path, "src", "main.shu"), []byte(main), 0o644); err != nil {
		return err
	}

	if icon := getStringFlag(cmd, "icon"); icon != "" {
		if err := copyFile(icon, filepath.Join(path, "pack.png")); err != nil {
			return err
		}
	}

	if vcs == "git" {
		if err := initGit(path); err != nil {
			deps.Printer.Warning("Cannot initialize git repository: %v", err)
		}
	}

	deps.Printer.Success("Project initialized successfully.")
	return nil
}

// promptPackConfig fills the pack configuration interactively, using the
// current values as defaults.
func promptPackConfig(pack *config.PackConfig) error {
	packFormat := strconv.Itoa(pack.PackFormat)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&pack.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name must not be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&pack.Description),
			huh.NewInput().
				Title("Pack format").
				Value(&packFormat).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("pack format must be a positive integer")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	n, err := strconv.Atoi(packFormat)
	if err != nil {
		return fmt.Errorf("invalid pack format %q", packFormat)
	}
	pack.PackFormat = n
	return nil
}

// initGit creates a git repository with a .gitignore excluding dist.
func initGit(path string) error {
	if err := os.WriteFile(filepath.Join(path, ".gitignore"), []byte("/dist\n"), 0o644); err != nil {
		return err
	}
	if _, err := exec.LookPath("git"); err != nil {
		return err
	}
	cmd := exec.Command("git", "init")
	cmd.Dir = path
	return cmd.Run()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
