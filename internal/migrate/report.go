package migrate

import (
	"fmt"
	"io"
)

// Outcome is the final disposition of a scanned unit. Every unit ends up
// with exactly one outcome; nothing is silently dropped.
type Outcome string

const (
	OutcomeMigrated  Outcome = "migrated"
	OutcomePreserved Outcome = "preserved"
	OutcomeWarned    Outcome = "warned"
	OutcomeExcluded  Outcome = "excluded"
)

// UnitOutcome pairs a unit identity with its outcome.
type UnitOutcome struct {
	Unit    string
	Outcome Outcome
	Detail  string
}

// Report is the partial-success report of a migration run.
type Report struct {
	Outcomes  []UnitOutcome
	Written   []string
	Preserved []string
	Warnings  []Warning
}

// BuildReport assembles the final report from the scan inventory, the
// plan and the write report.
func BuildReport(inv *Inventory, plan *Plan, wr *WriteReport) *Report {
	report := &Report{
		Written:   wr.Written,
		Preserved: wr.Preserved,
	}
	report.Warnings = append(report.Warnings, plan.Warnings...)
	report.Warnings = append(report.Warnings, wr.Warnings...)

	warned := make(map[string]string)
	for _, w := range report.Warnings {
		if _, ok := warned[w.Unit]; !ok {
			warned[w.Unit] = w.Message
		}
	}

	written := make(map[string]bool, len(wr.Written))
	for _, dest := range wr.Written {
		written[dest] = true
	}
	preserved := make(map[string]bool, len(wr.Preserved))
	for _, dest := range wr.Preserved {
		preserved[dest] = true
	}

	destination := make(map[string]string)
	for _, entry := range plan.Entries {
		for _, unit := range entry.Units {
			destination[unit.ID()] = entry.Destination
		}
	}

	for _, unit := range inv.Units {
		id := unit.ID()
		switch {
		case unit.Kind == KindManifest:
			report.Outcomes = append(report.Outcomes, UnitOutcome{
				Unit:    id,
				Outcome: OutcomeExcluded,
				Detail:  "seeds the project manifest",
			})
		case warned[id] != "":
			report.Outcomes = append(report.Outcomes, UnitOutcome{
				Unit:    id,
				Outcome: OutcomeWarned,
				Detail:  warned[id],
			})
		case preserved[destination[id]]:
			report.Outcomes = append(report.Outcomes, UnitOutcome{
				Unit:    id,
				Outcome: OutcomePreserved,
				Detail:  "existing file kept at " + destination[id],
			})
		default:
			report.Outcomes = append(report.Outcomes, UnitOutcome{
				Unit:    id,
				Outcome: OutcomeMigrated,
				Detail:  destination[id],
			})
		}
	}

	for _, skipped := range inv.Skipped {
		report.Outcomes = append(report.Outcomes, UnitOutcome{
			Unit:    skipped,
			Outcome: OutcomeExcluded,
			Detail:  "unrecognized, not migrated",
		})
	}

	return report
}

// Print writes the partial-success report in a stable, line-oriented
// format.
func (r *Report) Print(w io.Writer) {
	for _, o := range r.Outcomes {
		if o.Detail != "" {
			fmt.Fprintf(w, "%-9s %s (%s)\n", o.Outcome, o.Unit, o.Detail)
		} else {
			fmt.Fprintf(w, "%-9s %s\n", o.Outcome, o.Unit)
		}
	}
	fmt.Fprintf(w, "%d written, %d preserved, %d warnings\n",
		len(r.Written), len(r.Preserved), len(r.Warnings))
}
