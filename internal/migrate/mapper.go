package migrate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shulkerscript-lang/shulkerscript-cli/internal/config"
)

// Options configures a migration run.
type Options struct {
	// Name overrides the project name discovered from the legacy tree.
	Name string
	// Description overrides the description from the legacy manifest.
	Description string
	// Force overwrites pre-existing non-empty destination files.
	Force bool
}

// Strategy selects how an entry's content is produced.
type Strategy int

const (
	// StrategyFunction transcribes a single function unit.
	StrategyFunction Strategy = iota
	// StrategyTagMerge merges every tag unit of a namespace into one
	// declarative import file.
	StrategyTagMerge
)

// Entry is one planned destination file. Function entries carry exactly
// one unit; tag-merge entries carry every tag unit of their namespace.
type Entry struct {
	Units       []SourceUnit
	Destination string // slash path relative to the target root
	Strategy    Strategy
	// Namespace is the sanitized namespace the entry belongs to.
	Namespace string
}

// Warning is a non-fatal notice tied to a unit.
type Warning struct {
	Unit    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Unit, w.Message)
}

// Plan is an ordered migration plan. It is immutable once built; the
// writer consumes it without re-deriving any mapping decision.
type Plan struct {
	Entries  []Entry
	Manifest *config.ProjectManifest
	Warnings []Warning
}

// BuildPlan maps every unit of the inventory to exactly one plan entry.
// Manifest units are excluded from the entries and seed the new project
// manifest instead, with opts.Name and opts.Description taking precedence
// over discovered values. A destination collision is a PlanningError.
func BuildPlan(inv *Inventory, opts Options) (*Plan, error) {
	plan := &Plan{}

	claimed := make(map[string]string) // destination -> claiming unit ID
	tagEntry := make(map[string]int)   // sanitized namespace -> index in plan.Entries
	warnedNS := make(map[string]bool)

	var namespaces []string
	seenNS := make(map[string]bool)

	for _, unit := range inv.Units {
		switch unit.Kind {
		case KindManifest:
			m, err := ParseLegacyManifest(unit.RawContent)
			if err != nil {
				// The scanner validated the manifest already.
				return nil, &ScanError{Path: unit.RelativePath, Reason: "invalid manifest", Err: err}
			}
			plan.Manifest = seedManifest(inv.Root, m, opts)

		case KindFunction:
			ns := sanitizeNamespace(unit, plan, warnedNS)
			dest := functionDestination(ns, unit.RelativePath)
			if prev, ok := claimed[dest]; ok {
				return nil, &PlanningError{
					Destination: dest,
					Units:       []string{prev, unit.ID()},
					Reason:      "destination collision",
				}
			}
			claimed[dest] = unit.ID()
			if !config.IsValidName(functionName(unit.RelativePath)) {
				plan.Warnings = append(plan.Warnings, Warning{
					Unit:    unit.ID(),
					Message: fmt.Sprintf("function name is not a valid identifier, using %q", SanitizeFunctionName(unit.RelativePath)),
				})
			}
			plan.Entries = append(plan.Entries, Entry{
				Units:       []SourceUnit{unit},
				Destination: dest,
				Strategy:    StrategyFunction,
				Namespace:   ns,
			})
			if !seenNS[ns] {
				seenNS[ns] = true
				namespaces = append(namespaces, ns)
			}

		case KindTag:
			ns := sanitizeNamespace(unit, plan, warnedNS)
			if idx, ok := tagEntry[ns]; ok {
				entry := &plan.Entries[idx]
				entry.Units = append(entry.Units, unit)
				continue
			}
			dest := tagDestination(ns)
			if prev, ok := claimed[dest]; ok {
				return nil, &PlanningError{
					Destination: dest,
					Units:       []string{prev, unit.ID()},
					Reason:      "destination collision",
				}
			}
			claimed[dest] = unit.ID()
			plan.Entries = append(plan.Entries, Entry{
				Units:       []SourceUnit{unit},
				Destination: dest,
				Strategy:    StrategyTagMerge,
				Namespace:   ns,
			})
			tagEntry[ns] = len(plan.Entries) - 1
			if !seenNS[ns] {
				seenNS[ns] = true
				namespaces = append(namespaces, ns)
			}
		}
	}

	if plan.Manifest == nil {
		return nil, &PlanningError{Reason: "inventory has no manifest unit"}
	}
	plan.Manifest.Namespaces = namespaces

	return plan, nil
}

// seedManifest builds the new project manifest from the legacy one,
// with explicit options taking precedence over discovered values.
func seedManifest(root string, legacy *LegacyManifest, opts Options) *config.ProjectManifest {
	pack := config.DefaultPackConfig()

	if abs, err := filepath.Abs(root); err == nil {
		pack.Name = filepath.Base(abs)
	}
	if opts.Name != "" {
		pack.Name = opts.Name
	}

	if desc := legacy.Pack.DescriptionText(); desc != "" {
		pack.Description = desc
	}
	if opts.Description != "" {
		pack.Description = opts.Description
	}

	if legacy.Pack.PackFormat > 0 {
		pack.PackFormat = legacy.Pack.PackFormat
	}

	return config.NewProjectManifest(pack)
}

// sanitizeNamespace returns the sanitized namespace for a unit, warning
// once per namespace when the raw name is not a valid identifier.
func sanitizeNamespace(unit SourceUnit, plan *Plan, warned map[string]bool) string {
	if config.IsValidName(unit.Namespace) {
		return unit.Namespace
	}
	ns := config.SanitizeName(unit.Namespace)
	if !warned[unit.Namespace] {
		warned[unit.Namespace] = true
		plan.Warnings = append(plan.Warnings, Warning{
			Unit:    unit.ID(),
			Message: fmt.Sprintf("namespace %q is not a valid identifier, using %q", unit.Namespace, ns),
		})
	}
	return ns
}

// functionDestination computes the destination path of a function unit.
func functionDestination(ns, relativePath string) string {
	rel := strings.TrimSuffix(relativePath, ".mcfunction") + ".shu"
	return "src/" + ns + "/" + rel
}

// tagDestination computes the merged import file of a namespace.
func tagDestination(ns string) string {
	return "src/" + ns + "/tags.shu"
}

// functionName extracts the raw function name from a unit's relative path.
func functionName(relativePath string) string {
	rel := strings.TrimSuffix(relativePath, ".mcfunction")
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		rel = rel[i+1:]
	}
	return rel
}

// SanitizeFunctionName derives a valid function identifier from a unit's
// relative path.
func SanitizeFunctionName(relativePath string) string {
	return config.SanitizeName(functionName(relativePath))
}
