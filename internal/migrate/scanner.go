package migrate

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LegacyManifestName is the manifest file of a legacy datapack.
const LegacyManifestName = "pack.mcmeta"

// Inventory is the ordered result of scanning a legacy datapack tree.
// A second scan of an unchanged tree yields an identical inventory.
type Inventory struct {
	Root  string
	Units []SourceUnit
	// Skipped lists files outside recognized subpaths, relative to Root.
	// They are diagnostics, not errors.
	Skipped []string
}

// LegacyManifest is the parsed subset of pack.mcmeta consumed by the
// migration engine.
type LegacyManifest struct {
	Pack LegacyPack `json:"pack"`
}

// LegacyPack holds the pack section of pack.mcmeta.
type LegacyPack struct {
	Description json.RawMessage `json:"description"`
	PackFormat  int             `json:"pack_format"`
}

// DescriptionText returns the description as plain text. Rich-text
// descriptions are kept as their compact JSON form.
func (p LegacyPack) DescriptionText() string {
	var s string
	if err := json.Unmarshal(p.Description, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(p.Description))
}

// ParseLegacyManifest decodes a pack.mcmeta body.
func ParseLegacyManifest(content []byte) (*LegacyManifest, error) {
	var m LegacyManifest
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Scan walks a legacy datapack tree rooted at root and produces a typed
// inventory of its units. The walk is lexical and has no side effects.
//
// It fails with a ScanError if root does not exist, is not a directory,
// or contains a pack.mcmeta file that is not valid JSON.
func Scan(root string) (*Inventory, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{Path: root, Reason: "root does not exist"}
		}
		return nil, &ScanError{Path: root, Reason: "cannot stat root", Err: err}
	}
	if !info.IsDir() {
		return nil, &ScanError{Path: root, Reason: "root is not a directory"}
	}

	inv := &Inventory{Root: root}

	manifestPath := filepath.Join(root, LegacyManifestName)
	manifestData, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{Path: root, Reason: "no " + LegacyManifestName + " found, not a datapack"}
		}
		return nil, &ScanError{Path: manifestPath, Reason: "cannot read manifest", Err: err}
	}
	if _, err := ParseLegacyManifest(manifestData); err != nil {
		return nil, &ScanError{Path: manifestPath, Reason: "invalid manifest", Err: err}
	}
	inv.Units = append(inv.Units, SourceUnit{
		Kind:         KindManifest,
		RelativePath: LegacyManifestName,
		RawContent:   manifestData,
	})

	dataRoot := filepath.Join(root, "data")
	if info, err := os.Stat(dataRoot); err != nil || !info.IsDir() {
		// A datapack without a data directory is empty but valid.
		return inv, nil
	}

	seen := make(map[string]string)
	walkErr := filepath.WalkDir(dataRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return &ScanError{Path: path, Reason: "walk failed", Err: err}
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dataRoot, path)
		if err != nil {
			return &ScanError{Path: path, Reason: "cannot relativize", Err: err}
		}
		rel = filepath.ToSlash(rel)

		unit, ok := classify(rel)
		if !ok {
			relRoot, _ := filepath.Rel(root, path)
			inv.Skipped = append(inv.Skipped, filepath.ToSlash(relRoot))
			return nil
		}

		if prev, dup := seen[unit.ID()]; dup {
			return &ScanError{
				Path:   path,
				Reason: "duplicate unit identity " + unit.ID() + " (also at " + prev + ")",
			}
		}
		seen[unit.ID()] = rel

		content, err := os.ReadFile(path)
		if err != nil {
			return &ScanError{Path: path, Reason: "cannot read unit", Err: err}
		}
		unit.RawContent = content
		inv.Units = append(inv.Units, unit)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return inv, nil
}

// classify maps a slash path relative to the data root to a unit without
// content. Both the legacy plural ("functions") and the modern singular
// ("function") directory names are accepted.
func classify(rel string) (SourceUnit, bool) {
	segs := strings.Split(rel, "/")
	if len(segs) < 3 {
		return SourceUnit{}, false
	}
	ns := segs[0]

	switch segs[1] {
	case "functions", "function":
		if !strings.HasSuffix(rel, ".mcfunction") {
			return SourceUnit{}, false
		}
		return SourceUnit{
			Namespace:    ns,
			Kind:         KindFunction,
			RelativePath: strings.Join(segs[2:], "/"),
		}, true
	case "tags":
		if len(segs) < 4 || (segs[2] != "functions" && segs[2] != "function") {
			return SourceUnit{}, false
		}
		if !strings.HasSuffix(rel, ".json") {
			return SourceUnit{}, false
		}
		return SourceUnit{
			Namespace:    ns,
			Kind:         KindTag,
			RelativePath: strings.Join(segs[3:], "/"),
		}, true
	default:
		return SourceUnit{}, false
	}
}
