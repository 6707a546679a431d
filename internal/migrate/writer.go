package migrate

import (
	"os"
	"path/filepath"

	"github.com/shulkerscript-lang/shulkerscript-cli/internal/config"
)

// WriteReport lists what a writer run actually did on disk.
type WriteReport struct {
	// Written holds destination paths (relative to the target root)
	// written during this run, in write order.
	Written []string
	// Preserved holds pre-existing non-empty destinations that were
	// left untouched because Force was not set.
	Preserved []string
	// Warnings holds transcription warnings raised while producing
	// entry contents.
	Warnings []Warning
}

// Writer materializes a migration plan on disk.
type Writer struct {
	// Force overwrites pre-existing non-empty destination files.
	Force bool
	// Progress, when set, is called once per plan entry after it has
	// been handled.
	Progress func(destination string)
}

// Execute writes every plan entry below targetRoot, then the project
// manifest. The manifest is written last so a partially failed run never
// leaves a manifest implying a complete project. On a write failure the
// remaining entries are abandoned; already-written files are kept and
// listed in the returned report alongside the WriteError.
func (w *Writer) Execute(plan *Plan, targetRoot string) (*WriteReport, error) {
	report := &WriteReport{}

	if err := os.MkdirAll(targetRoot, 0o755); err != nil {
		return report, &WriteError{Path: targetRoot, Err: err}
	}

	for _, entry := range plan.Entries {
		var content string
		switch entry.Strategy {
		case StrategyFunction:
			content = TranscribeFunction(entry.Units[0], entry.Namespace)
		case StrategyTagMerge:
			merged, warnings := TranscribeTags(entry.Namespace, entry.Units)
			content = merged
			report.Warnings = append(report.Warnings, warnings...)
		}

		if err := w.writeFile(targetRoot, entry.Destination, []byte(content), report); err != nil {
			return report, err
		}
		if w.Progress != nil {
			w.Progress(entry.Destination)
		}
	}

	manifestPath := filepath.Join(targetRoot, config.ManifestFileName)
	if !w.Force && existsNonEmpty(manifestPath) {
		report.Preserved = append(report.Preserved, config.ManifestFileName)
		return report, nil
	}
	if err := config.Save(plan.Manifest, manifestPath); err != nil {
		return report, &WriteError{Path: config.ManifestFileName, Err: err}
	}
	report.Written = append(report.Written, config.ManifestFileName)

	return report, nil
}

// writeFile writes one destination, honoring the no-clobber rule.
func (w *Writer) writeFile(targetRoot, destination string, content []byte, report *WriteReport) error {
	path := filepath.Join(targetRoot, filepath.FromSlash(destination))

	if !w.Force && existsNonEmpty(path) {
		report.Preserved = append(report.Preserved, destination)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Path: destination, Err: err}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return &WriteError{Path: destination, Err: err}
	}
	report.Written = append(report.Written, destination)
	return nil
}

func existsNonEmpty(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}
